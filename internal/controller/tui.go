package controller

import (
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/tptester/internal/model"
)

const progressWidth = 40

// TUI implements UI with coloured output for interactive terminals and a
// progress bar after every case.
type TUI struct {
	console
	bar   progress.Model
	total int
	done  int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		console: console{out: output, colors: colorPalette()},
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
	}
}

func colorPalette() palette {
	style := func(color string) func(string) string {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		return func(text string) string { return s.Render(text) }
	}

	return palette{
		title:  style("11"), // Yellow
		header: style("12"), // Blue
		pass:   style("10"), // Green
		fail:   style("9"),  // Red
		diag:   style("11"), // Yellow
	}
}

// Start prints the suite banner.
func (t *TUI) Start(program, _ string, count int) {
	t.total = count
	t.done = 0
	t.start(program)
}

// DisplayCaseStart prints the case header.
func (t *TUI) DisplayCaseStart(tc m.TestCase, program, wrapper string) {
	t.caseStart(tc, program, wrapper)
}

// DisplayResolveError reports a case whose files could not be determined.
func (t *TUI) DisplayResolveError(ix m.TestIndex, err error) {
	t.resolveError(ix, err)
	t.advance()
}

// DisplayFileAccessError reports a file that could not be opened.
func (t *TUI) DisplayFileAccessError(_ m.TestIndex, file m.Path) {
	t.fileAccessError(file)
	t.advance()
}

// DisplayLaunchError reports a program that could not be started.
func (t *TUI) DisplayLaunchError(_ m.TestIndex, _ error) {
	t.launchError()
}

// DisplayExecution prints exit code, CPU times and stderr.
func (t *TUI) DisplayExecution(_ m.TestIndex, result m.ExecutionResult, wrapper string) {
	t.execution(result, wrapper)
}

// DisplayComparison prints whether the output matched the answer.
func (t *TUI) DisplayComparison(_ m.TestIndex, matched bool) {
	t.comparison(matched)
}

// DisplayOutcome prints the verdict followed by the progress bar.
func (t *TUI) DisplayOutcome(outcome m.TestOutcome) {
	t.outcome(outcome)
	t.advance()
}

// DisplaySummary prints the final counts.
func (t *TUI) DisplaySummary(summary m.SuiteSummary) {
	t.summary(summary)
}

// DisplayGraph prints the name of the generated graph.
func (t *TUI) DisplayGraph(fileName string) {
	t.graph(fileName)
}

// DisplayCases lists resolved cases.
func (t *TUI) DisplayCases(cases []m.TestCase) error {
	return t.cases(cases)
}

// DisplayRuns lists stored runs.
func (t *TUI) DisplayRuns(runs []m.RunRecord) error {
	return t.runs(runs)
}

// DisplayRunOutcomes shows one stored run.
func (t *TUI) DisplayRunOutcomes(run m.RunRecord, outcomes []m.TestOutcome) error {
	return t.runOutcomes(run, outcomes)
}

func (t *TUI) advance() {
	t.done++
	if t.total <= 0 {
		return
	}

	t.printf("%s %d/%d\n\n", t.bar.ViewAs(float64(t.done)/float64(t.total)), t.done, t.total)
}
