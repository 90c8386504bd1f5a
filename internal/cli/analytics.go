package cli

import (
	"github.com/spf13/cobra"
)

func newAnalyticsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Portfolio analytics from the backend",
	}

	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "Portfolio-wide counts by status, function, benefits and tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.client().FetchAnalyticsOverview(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": overview})
		},
	}

	timelineCmd := &cobra.Command{
		Use:   "timeline",
		Short: "Per-project milestone progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ta, err := app.client().FetchTimelineAnalytics(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ta})
		},
	}

	cmd.AddCommand(overviewCmd)
	cmd.AddCommand(timelineCmd)
	return cmd
}
