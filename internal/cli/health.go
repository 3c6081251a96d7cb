package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type healthOutput struct {
	API       string `json:"api"`
	Mode      string `json:"mode"`
	Available bool   `json:"available"`
	Provider  string `json:"provider"`
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the catalog API and show which provider is used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := GetOptions(cmd)
			app, err := newApp(cmd.Context(), appOptions{CommandOptions: opts})
			if err != nil {
				return err
			}
			defer app.Close()

			out := healthOutput{
				API:       app.Config.API.BaseURL,
				Mode:      app.Config.Search.Provider,
				Available: app.Available,
				Provider:  app.Backend.Name(),
			}

			if opts.JSONOutput {
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal health to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			status := "unreachable"
			if out.Available {
				status = "ok"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API:      %s (%s)\n", out.API, status)
			fmt.Fprintf(cmd.OutOrStdout(), "Mode:     %s\n", out.Mode)
			fmt.Fprintf(cmd.OutOrStdout(), "Provider: %s\n", out.Provider)
			return nil
		},
	}
}
