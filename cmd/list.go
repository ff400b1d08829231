package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tptester/internal/domain"
)

const listLongDescription = `List the cases a suite would run, with their input and answer files and
program arguments, without running anything. Takes the same case selection
flags as run.`

var listCases caseFlags

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cases of a suite",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := listCases.resolve()
			if err != nil {
				return err
			}

			return withWorkflow(cmd, "", func(wf domain.Workflow) error {
				return wf.List(domain.ListArgs{
					Indexes:  sel.indexes,
					Resolver: sel.resolver,
				})
			})
		},
	}
	listCases.register(cmd.Flags())

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
