package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"adminsearch/internal/search"
)

// queryOption is the JSON form of one composed option
type queryOption struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Header bool   `json:"header,omitempty"`
	Status string `json:"status,omitempty"`
}

type queryOutput struct {
	Query   string        `json:"query"`
	Options []queryOption `json:"options"`
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <text>",
		Short: "Run one search and print the composed results",
		Long: `Run one search through the selected provider and print the options the
search bar would show, grouped by section.

Korean input typed on a 2-set keyboard layout is transliterated first when
search.transliterate_hangul is enabled.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := GetOptions(cmd)
			app, err := newApp(cmd.Context(), appOptions{CommandOptions: opts})
			if err != nil {
				return err
			}
			defer app.Close()

			query := app.NormalizeQuery(strings.TrimSpace(strings.Join(args, " ")))
			if query == "" {
				return fmt.Errorf("query must not be blank")
			}

			var options []search.Option
			if len(app.Sections) > 0 {
				resp, err := app.Backend.Search(cmd.Context(), query)
				if err != nil {
					return fmt.Errorf("search failed: %w", err)
				}
				options = search.NewComposer(search.PlainRenderers()).Compose(app.Sections, query, resp)
			}

			if opts.JSONOutput {
				return writeQueryJSON(cmd.OutOrStdout(), query, options)
			}
			writeQueryText(cmd.OutOrStdout(), query, options, len(app.Sections) == 0)
			return nil
		},
	}
}

func writeQueryJSON(w io.Writer, query string, options []search.Option) error {
	out := queryOutput{Query: query, Options: make([]queryOption, 0, len(options))}
	for _, opt := range options {
		o := queryOption{
			Value:  opt.Value.String(),
			Label:  strings.TrimSpace(opt.Label),
			Header: !opt.Selectable(),
		}
		if opt.Item != nil {
			o.Status = string(opt.Item.Status)
		}
		out.Options = append(out.Options, o)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeQueryText(w io.Writer, query string, options []search.Option, misconfigured bool) {
	switch {
	case misconfigured:
		fmt.Fprintln(w, "No sections provided")
		return
	case len(options) == 0:
		fmt.Fprintf(w, "No results for %q\n", query)
		return
	}

	for _, opt := range options {
		if !opt.Selectable() {
			fmt.Fprintln(w, opt.Label)
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\n", opt.Label, opt.Value.String())
	}
}
