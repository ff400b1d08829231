package cmd

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/tptester/internal/adapter"
	"github.com/mouse-blink/tptester/internal/domain"
)

const runLongDescription = `Run the program once per test case.

Each case's input file is fed on stdin and, when an answer file is given,
stdout is compared byte for byte with it. A case passes when the program
exits with status 0 and its output matched (or no answer was given).

Patterns are Go templates with sprig functions. {{.Index}} is the index as
written, {{.N}} its numeric value:
  tptester run ./prog -i 1-20 --input 'tests/{{.Index}}.in' --answer 'tests/{{printf "%02d" .N}}.ans'

With --valgrind every case runs under the wrapper (default /usr/bin/valgrind)
and its stderr is shown as the wrapper's report.

Exits with status 1 unless every case passed and none was skipped.`

var runCases caseFlags

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [program]",
		Short: "Run a test suite",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			testArgs, err := buildTestArgs(cmd, &runCases, args)
			if err != nil {
				return err
			}

			return withWorkflow(cmd, viper.GetString(keyHistoryPath), func(wf domain.Workflow) error {
				_, err := wf.Test(testArgs)

				return err
			})
		},
	}

	flags := cmd.Flags()
	runCases.register(flags)
	flags.Bool("valgrind", false, "run every case under the diagnostic wrapper")
	flags.String("wrapper", adapter.DefaultWrapper, "diagnostic wrapper used by --valgrind")
	flags.String("output-transform", "", "stdout transform before comparison ("+transformList()+")")
	flags.Bool("graph", false, "plot user CPU time per case to an SVG file")
	flags.String("graph-dir", ".", "directory for the SVG graph")
	flags.String("graph-title", adapter.DefaultGraphTitle, "graph title")
	flags.String("graph-x", adapter.DefaultGraphX, "graph x axis label")
	flags.String("graph-y", adapter.DefaultGraphY, "graph y axis label")

	_ = viper.BindPFlag(keyValgrind, flags.Lookup("valgrind"))
	_ = viper.BindPFlag(keyWrapper, flags.Lookup("wrapper"))
	_ = viper.BindPFlag(keyOutputTransform, flags.Lookup("output-transform"))
	_ = viper.BindPFlag(keyGraphEnabled, flags.Lookup("graph"))
	_ = viper.BindPFlag(keyGraphDir, flags.Lookup("graph-dir"))
	_ = viper.BindPFlag(keyGraphTitle, flags.Lookup("graph-title"))
	_ = viper.BindPFlag(keyGraphX, flags.Lookup("graph-x"))
	_ = viper.BindPFlag(keyGraphY, flags.Lookup("graph-y"))

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func buildTestArgs(cmd *cobra.Command, cases *caseFlags, args []string) (domain.TestArgs, error) {
	sel, err := cases.resolve()
	if err != nil {
		return domain.TestArgs{}, err
	}

	program := ""
	if len(args) > 0 {
		program = args[0]
	} else if sel.manifest != nil {
		program = sel.manifest.Program()
	}

	if program == "" {
		return domain.TestArgs{}, errors.New("no program given")
	}

	transformName := viper.GetString(keyOutputTransform)
	if sel.manifest != nil && !cmd.Flags().Changed("output-transform") && sel.manifest.OutputTransform() != "" {
		transformName = sel.manifest.OutputTransform()
	}

	transform, err := adapter.TransformByName(transformName)
	if err != nil {
		return domain.TestArgs{}, err
	}

	wrapper := ""
	if viper.GetBool(keyValgrind) || cmd.Flags().Changed("wrapper") {
		wrapper = viper.GetString(keyWrapper)
	}

	testArgs := domain.TestArgs{
		Suite: domain.SuiteConfig{
			Program:  program,
			Indexes:  sel.indexes,
			Resolver: sel.resolver,
			Wrapper:  wrapper,
			Output:   transform,
		},
	}

	if viper.GetBool(keyGraphEnabled) {
		testArgs.Graph = &domain.GraphArgs{
			Title:  viper.GetString(keyGraphTitle),
			XLabel: viper.GetString(keyGraphX),
			YLabel: viper.GetString(keyGraphY),
		}
	}

	logger.Debug("suite configured",
		"program", program,
		"cases", len(sel.indexes),
		"wrapper", wrapper,
		"transform", transformName)

	return testArgs, nil
}

func transformList() string {
	return strings.Join(adapter.TransformNames(), ", ")
}
