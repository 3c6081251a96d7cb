// Package cli defines the adminsearch commands
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"adminsearch/internal/eventbus"
	"adminsearch/internal/search"
	"adminsearch/internal/ui"
	"adminsearch/internal/ui/views"
)

// CommandOptions holds the persistent flags
type CommandOptions struct {
	ConfigFile string
	APIURL     string
	Provider   string
	Verbose    bool
	JSONOutput bool
}

// GetOptions extracts the persistent flags from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	apiURL, _ := cmd.Flags().GetString("api")
	providerMode, _ := cmd.Flags().GetString("provider")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		APIURL:     apiURL,
		Provider:   providerMode,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// NewRootCmd creates the adminsearch command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adminsearch",
		Short: "Search products and categories from the terminal",
		Long: `adminsearch is an autocomplete search bar for the catalog admin.

Type to search products and categories, move with the arrow keys and press
enter to open the detail page of the highlighted item.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), GetOptions(cmd))
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to config.toml")
	cmd.PersistentFlags().String("api", "", "Catalog API base URL")
	cmd.PersistentFlags().String("provider", "", "Search provider: auto, remote or local")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newShowCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func runTUI(ctx context.Context, opts CommandOptions) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the search bar needs a terminal, use 'adminsearch query' instead")
	}

	app, err := newApp(ctx, appOptions{CommandOptions: opts, Interactive: true})
	if err != nil {
		return err
	}
	defer app.Close()

	relay := ui.NewStateRelay()
	defer relay.Stop()

	renderer := views.NewRenderer(nil)
	controllerCfg := app.ControllerConfig(relay.Push)
	controllerCfg.Composer = search.NewComposer(views.SearchRenderers(renderer.Styles()))
	controller := search.NewController(controllerCfg)
	defer controller.Dispose()

	model := ui.NewModel(ui.Options{
		Controller:  controller,
		Dispatcher:  app.Dispatcher,
		Pages:       app.Pages,
		Renderer:    renderer,
		Placeholder: app.Config.Search.Placeholder,
		InputWidth:  app.Config.InputWidth(),
		Provider:    app.Backend.Name(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)
	relay.Start(p)

	// Forward bus events the UI reacts to
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	for _, t := range []eventbus.EventType{
		eventbus.EventNavigationRequested,
		eventbus.EventProviderSelected,
		eventbus.EventError,
	} {
		unsubscribe := app.Bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	app.log.Info("Starting UI")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	app.log.Info("UI exited normally")
	return nil
}
