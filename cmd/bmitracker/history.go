package main

import (
	"fmt"
	"strings"

	"bmitracker/internal/domain"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print a user's measurement history, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(user) == "" {
				return fmt.Errorf("%w: --user is required", domain.ErrInvalidInput)
			}
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			records, err := rt.measurements.History(cmd.Context(), user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintf(out, "No records found for %s\n", strings.TrimSpace(user))
				return nil
			}
			return printHistory(out, records)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id")
	return cmd
}

func newUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List every user with stored measurements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			users, err := rt.measurements.Users(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range users {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the BMI category reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCategories(cmd.OutOrStdout())
		},
	}
}
