// Package cli wires the cobra command tree. Running the binary with no
// subcommand starts the interactive TUI; subcommands are the scriptable
// surface over the same backend.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-cli/internal/api"
	"portfolio-cli/internal/format"
	"portfolio-cli/internal/store"
	"portfolio-cli/internal/tui"
)

type App struct {
	BaseURL    string
	Format     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Project portfolio dashboard CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  portfolio

  # Scriptable commands
  portfolio projects list
  portfolio projects list --status PRODUCTION --tag ai
  portfolio analytics overview
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "base-url", envOr("PORTFOLIO_BASE_URL", ""), "Backend base URL (default: config value, then "+api.DefaultBaseURL+")")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("PORTFOLIO_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")

	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newAnalyticsCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	return tui.Run(app.client())
}

// client resolves the backend address: flag/env first, then the saved
// config, then the default.
func (app *App) client() *api.Client {
	baseURL := app.BaseURL
	if baseURL == "" {
		if cfg, err := store.LoadConfig(); err == nil {
			baseURL = cfg.BaseURL
		}
	}
	return api.NewClient(baseURL)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
