package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/bg3planner/internal/adapters/cli"
	"github.com/example/bg3planner/internal/ports/primary"
	"github.com/example/bg3planner/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var limit int
	var action string
	var name string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the audit log of character changes",
		Long: `Show every create, update, delete and copy, newest first.

Examples:
  bg3 history
  bg3 history --action copy --limit 5
  bg3 history --name Karlach`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := historyAdapter()
			if err != nil {
				return err
			}
			return adapter.List(NewContext(), primary.HistoryFilters{
				Action: action,
				Name:   name,
				Limit:  limit,
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	cmd.Flags().StringVar(&action, "action", "", "Filter by action (create, update, delete, copy)")
	cmd.Flags().StringVar(&name, "name", "", "Filter by character name")

	cmd.AddCommand(historyPruneCmd())

	return cmd
}

func historyPruneCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete audit entries older than --days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := historyAdapter()
			if err != nil {
				return err
			}
			return adapter.Prune(NewContext(), days)
		},
	}

	cmd.Flags().IntVar(&days, "days", 90, "Keep entries newer than this many days")

	return cmd
}

func historyAdapter() (*cliadapter.HistoryAdapter, error) {
	adapter := wire.HistoryAdapter()
	if adapter == nil {
		return nil, fmt.Errorf("history is disabled (set \"history\": true in .bg3/config.json)")
	}
	return adapter, nil
}
