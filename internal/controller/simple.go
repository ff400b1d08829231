package controller

import (
	m "github.com/mouse-blink/tptester/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text on the cobra command's output.
// After the summary it prints a table of every case, which reads well in CI
// logs and redirected output.
type SimpleUI struct {
	console
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		console: console{out: cmd.OutOrStdout(), colors: plainPalette()},
	}
}

// Start prints the suite banner.
func (s *SimpleUI) Start(program, _ string, _ int) {
	s.start(program)
}

// DisplayCaseStart prints the case header.
func (s *SimpleUI) DisplayCaseStart(tc m.TestCase, program, wrapper string) {
	s.caseStart(tc, program, wrapper)
}

// DisplayResolveError reports a case whose files could not be determined.
func (s *SimpleUI) DisplayResolveError(ix m.TestIndex, err error) {
	s.resolveError(ix, err)
}

// DisplayFileAccessError reports a file that could not be opened.
func (s *SimpleUI) DisplayFileAccessError(_ m.TestIndex, file m.Path) {
	s.fileAccessError(file)
}

// DisplayLaunchError reports a program that could not be started.
func (s *SimpleUI) DisplayLaunchError(_ m.TestIndex, _ error) {
	s.launchError()
}

// DisplayExecution prints exit code, CPU times and stderr.
func (s *SimpleUI) DisplayExecution(_ m.TestIndex, result m.ExecutionResult, wrapper string) {
	s.execution(result, wrapper)
}

// DisplayComparison prints whether the output matched the answer.
func (s *SimpleUI) DisplayComparison(_ m.TestIndex, matched bool) {
	s.comparison(matched)
}

// DisplayOutcome prints the verdict of a case.
func (s *SimpleUI) DisplayOutcome(outcome m.TestOutcome) {
	s.outcome(outcome)
}

// DisplaySummary prints the final counts followed by a per-case table.
func (s *SimpleUI) DisplaySummary(summary m.SuiteSummary) {
	s.summary(summary)

	if len(summary.Outcomes) == 0 {
		return
	}

	rows := make([][]string, 0, len(summary.Outcomes))
	for _, o := range summary.Outcomes {
		rows = append(rows, outcomeRow(o))
	}

	s.table([]string{"Test", "Input", "Exit", "User", "System", "Output", "Result"}, rows, nil)
}

// DisplayGraph prints the name of the generated graph.
func (s *SimpleUI) DisplayGraph(fileName string) {
	s.graph(fileName)
}

// DisplayCases lists resolved cases.
func (s *SimpleUI) DisplayCases(cases []m.TestCase) error {
	return s.cases(cases)
}

// DisplayRuns lists stored runs.
func (s *SimpleUI) DisplayRuns(runs []m.RunRecord) error {
	return s.runs(runs)
}

// DisplayRunOutcomes shows one stored run.
func (s *SimpleUI) DisplayRunOutcomes(run m.RunRecord, outcomes []m.TestOutcome) error {
	return s.runOutcomes(run, outcomes)
}
