package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/minic/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded runs",
		Long:  `List, show and clear the runs recorded in ~/.minic/minic.db.`,
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyClearCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	var kind string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.HistoryAdapterWithOutput(cmd.OutOrStdout()).List(NewContext(), kind, limit)
			return err
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Filter by kind (reverse, armstrong, tokenize, compile, run)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of runs to show (0 for all)")

	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [run-id]",
		Short: "Show a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.HistoryAdapterWithOutput(cmd.OutOrStdout()).Show(NewContext(), args[0])
			return err
		},
	}
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.HistoryAdapterWithOutput(cmd.OutOrStdout()).Clear(NewContext())
			return err
		},
	}
}
