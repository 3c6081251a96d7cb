package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"adminsearch/internal/router"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <type> <id>",
		Short:   "Print the detail page of a product or category",
		Example: "  adminsearch show product 1\n  adminsearch show category 2",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), appOptions{CommandOptions: GetOptions(cmd)})
			if err != nil {
				return err
			}
			defer app.Close()

			fmt.Fprint(cmd.OutOrStdout(), app.Pages.Render(cmd.Context(), router.Path(args[0], args[1])))
			return nil
		},
	}
}
