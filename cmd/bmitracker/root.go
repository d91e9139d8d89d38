package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var interactive bool

	root := &cobra.Command{
		Use:   "bmitracker",
		Short: "Compute, classify and track Body Mass Index",
		Long: `bmitracker computes BMI from weight and height, classifies it into a
health category and keeps a per-user history.

With no subcommand it starts the web shell. Pass --cli for the interactive
prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()
			if interactive {
				return newPrompter(in, out, rt.measurements, rt.cfg.Limits).Run(cmd.Context())
			}
			return serve(cmd.Context(), rt)
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	root.Flags().BoolVar(&interactive, "cli", false, "run the interactive command-line prompt")

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./bmitracker.yaml)")
	pf.String("store", "", "record store driver: sqlite, postgres or memory")
	pf.String("db", "", "SQLite database file")
	pf.String("dsn", "", "PostgreSQL connection string")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: json or console")
	pf.String("addr", "", "web shell listen address (default :8080)")

	root.AddCommand(
		newServeCmd(),
		newCalcCmd(),
		newHistoryCmd(),
		newUsersCmd(),
		newExportCmd(),
		newCategoriesCmd(),
		newMigrateCmd(),
	)
	return root
}
