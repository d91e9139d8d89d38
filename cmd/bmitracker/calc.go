package main

import (
	"fmt"

	"bmitracker/internal/domain"

	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	var (
		weight, height         float64
		weightUnit, heightUnit string
		user                   string
		save                   bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute BMI for one measurement",
		Example: `  bmitracker calc --weight 75 --height 1.75
  bmitracker calc --weight 165 --weight-unit lb --height 175 --height-unit cm --user alice --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save && user == "" {
				return fmt.Errorf("%w: --save requires --user", domain.ErrInvalidInput)
			}
			w, h, err := domain.ToMetric(weight, weightUnit, height, heightUnit)
			if err != nil {
				return err
			}

			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := domain.CheckPlausible(w, h, rt.cfg.Limits); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !save {
				res, err := rt.measurements.Calculate(w, h)
				if err != nil {
					return err
				}
				printResult(out, res)
				return nil
			}
			rec, err := rt.measurements.Record(cmd.Context(), user, w, h)
			if err != nil {
				return err
			}
			printResult(out, domain.Result{WeightKg: rec.WeightKg, HeightM: rec.HeightM, BMI: rec.BMI, Category: rec.Category})
			fmt.Fprintf(out, "Saved for %s at %s\n", rec.UserID, rec.Timestamp.Local().Format(timeFormat))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&weight, "weight", 0, "body weight")
	f.Float64Var(&height, "height", 0, "body height")
	f.StringVar(&weightUnit, "weight-unit", domain.UnitKg, "weight unit: kg or lb")
	f.StringVar(&heightUnit, "height-unit", domain.UnitM, "height unit: m, cm or in")
	f.StringVar(&user, "user", "", "user id to save the record under")
	f.BoolVar(&save, "save", false, "append the result to the user's history")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
