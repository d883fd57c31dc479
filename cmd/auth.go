package cmd

import (
	"fmt"

	"github.com/forcekit/hubkit/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage hub authentication",
	}

	cmd.AddCommand(newAuthSetupCmd(app), newAuthTransferCmd(app), newAuthStrategyCmd(app))

	return cmd
}

func newAuthSetupCmd(app *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Authorize the hub using the resolved strategy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetDir := dir
			if targetDir == "" {
				targetDir = app.cfg.HomeDir
			}

			strategy, err := app.service.EnsureHubAuth(cmd.Context(), targetDir)
			if err != nil {
				return err
			}

			if strategy == domain.StrategyNone {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no hub credentials configured, nothing to authorize")
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "hub authorized via %s strategy\n", strategy)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory for temporary credential files (default: home directory)")

	return cmd
}

func newAuthTransferCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer",
		Short: "Re-export an existing hub auth record as TESTKIT_* env state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.service.Strategy() != domain.StrategyReuse {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "strategy is %s, no transfer needed\n", app.service.Strategy())
				return err
			}

			if err := app.service.TransferExistingAuth(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "transferred existing auth, strategy is now %s\n", app.service.Strategy())
			return err
		},
	}
}

func newAuthStrategyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strategy",
		Short: "Print the auth strategy resolved from the environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.service.Strategy())
			return err
		},
	}
}
