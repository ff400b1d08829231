package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/tptester/internal/adapter"
	"github.com/mouse-blink/tptester/internal/domain"
)

var historyLimitFlag int

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded suite runs",
		Long: `Show runs recorded with --history, latest first. With a run ID (or a
unique prefix of one) show the outcome of every case of that run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString(keyHistoryPath)
			if path == "" {
				path = adapter.DefaultReportStorePath()
			}

			runID := ""
			if len(args) > 0 {
				runID = args[0]
			}

			return withWorkflow(cmd, path, func(wf domain.Workflow) error {
				return wf.History(domain.HistoryArgs{RunID: runID, Limit: historyLimitFlag})
			})
		},
	}
	cmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 20, "number of runs to show (0 for all)")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
