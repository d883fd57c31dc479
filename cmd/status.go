package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	hubrender "github.com/forcekit/hubkit/internal/adapters/render/hub"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the resolved hub auth state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.service.Report(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				encoded, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encode status: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.renderer(report, hubrender.RenderOptions{Now: time.Now()}))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
