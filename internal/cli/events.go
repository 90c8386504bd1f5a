package cli

import (
	"github.com/spf13/cobra"

	"portfolio-cli/internal/store"
)

func newEventsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the local log of create/update operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded operations (newest-first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := store.OpenOpLog(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer log.Close()
			ops, err := log.List(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			type opOut struct {
				ID        string `json:"id"`
				Kind      string `json:"kind"`
				ProjectID string `json:"projectId"`
				Title     string `json:"title"`
				IssuedAt  string `json:"issuedAt"`
			}
			out := make([]opOut, 0, len(ops))
			for _, op := range ops {
				out = append(out, opOut{
					ID:        op.ID,
					Kind:      op.Kind,
					ProjectID: op.ProjectID,
					Title:     op.Title,
					IssuedAt:  op.IssuedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
				})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 200, "Max operations to return (0 = all)")

	cmd.AddCommand(listCmd)
	return cmd
}
