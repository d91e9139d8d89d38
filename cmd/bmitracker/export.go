package main

import (
	"fmt"
	"os"
	"strings"

	"bmitracker/internal/adapter/xlsx"
	"bmitracker/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd() *cobra.Command {
	var user, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a user's BMI trend workbook with charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user = strings.TrimSpace(user)
			if user == "" {
				return fmt.Errorf("%w: --user is required", domain.ErrInvalidInput)
			}
			if outPath == "" {
				outPath = user + "-bmi.xlsx"
			}
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			trend, err := rt.charts.Trend(cmd.Context(), user)
			if err != nil {
				return err
			}
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := xlsx.WriteTrend(f, trend); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			rt.log.Debug("trend exported", zap.String("user", user), zap.String("path", outPath))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", len(trend.Points), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <user>-bmi.xlsx)")
	return cmd
}
