// Package cmd provides the root command and CLI setup for tptester.
package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/tptester/internal/adapter"
	"github.com/mouse-blink/tptester/internal/controller"
	"github.com/mouse-blink/tptester/internal/domain"
)

// workflowFactory wires the workflow for one command invocation. The
// returned func releases what it opened.
type workflowFactory func(cmd *cobra.Command, historyPath string) (domain.Workflow, func(), error)

var newWorkflow workflowFactory = buildWorkflow

var logger = newLogger(defaultLogLevel)

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tptester",
		Short: "Run a program against a suite of input/answer files",
		Long: `tptester runs a program once per test case, feeds it the case input on
stdin, compares its stdout with the expected answer and reports exit codes,
CPU times and a pass/fail summary.

Cases come either from path patterns:
  tptester run ./prog -i 1-10 --input 'tests/{{.Index}}.in' --answer 'tests/{{.Index}}.out'
or from a YAML manifest:
  tptester run --suite suite.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := initConfig(configFlag); err != nil {
				return err
			}

			logger = newLogger(viper.GetString(keyLogLevel))
			if used := viper.ConfigFileUsed(); used != "" {
				logger.Debug("loaded config", "file", used)
			}

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "config file (default is .tptester.yaml in the current or a parent directory)")
	flags.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.Bool("no-color", false, "disable colors and the progress bar")
	flags.String("history", "", "record runs in a SQLite database (bare flag uses "+adapter.DefaultReportStorePath()+")")
	flags.Lookup("history").NoOptDefVal = adapter.DefaultReportStorePath()

	_ = viper.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(keyNoColor, flags.Lookup("no-color"))
	_ = viper.BindPFlag(keyHistoryPath, flags.Lookup("history"))

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if !errors.Is(err, domain.ErrSuiteFailed) {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	os.Exit(1)
}

func buildWorkflow(cmd *cobra.Command, historyPath string) (domain.Workflow, func(), error) {
	useTTY := !viper.GetBool(keyNoColor) && controller.IsTTY(cmd.OutOrStdout())
	ui := controller.NewUI(cmd, useTTY)

	var store adapter.ReportStore

	cleanup := func() {}

	if historyPath != "" {
		sqlite, err := adapter.NewSQLiteReportStore(historyPath, logger)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open run history")
		}

		store = sqlite
		cleanup = func() {
			if err := sqlite.Close(); err != nil {
				logger.Warn("failed to close run history", "err", err)
			}
		}
	}

	runner := domain.NewSuiteRunner(
		adapter.NewLocalCaseFS(),
		adapter.NewLocalProcessRunner(),
		ui,
		domain.WithLogger(logger),
	)

	wf := domain.NewWorkflow(
		runner,
		ui,
		adapter.NewSVGPlotter(viper.GetString(keyGraphDir)),
		store,
		domain.WithLogger(logger),
	)

	return wf, cleanup, nil
}

func withWorkflow(cmd *cobra.Command, historyPath string, fn func(wf domain.Workflow) error) error {
	wf, cleanup, err := newWorkflow(cmd, historyPath)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(wf)
}
