package cli

import (
	"github.com/spf13/cobra"

	"portfolio-cli/internal/api"
	"portfolio-cli/internal/store"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change the saved configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved configuration and the effective base URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			effective := app.BaseURL
			if effective == "" {
				effective = cfg.BaseURL
			}
			if effective == "" {
				effective = api.DefaultBaseURL
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"config":           cfg,
				"effectiveBaseUrl": effective,
			}})
		},
	}

	setBaseURLCmd := &cobra.Command{
		Use:   "set-base-url <url>",
		Short: "Save the backend base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg.BaseURL = args[0]
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}

	cmd.AddCommand(showCmd)
	cmd.AddCommand(setBaseURLCmd)
	return cmd
}
