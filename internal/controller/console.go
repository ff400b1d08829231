package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/tptester/internal/model"
)

// palette colours report fragments. The zero palette prints plain text.
type palette struct {
	title  func(string) string
	header func(string) string
	pass   func(string) string
	fail   func(string) string
	diag   func(string) string
}

func plain(s string) string { return s }

func plainPalette() palette {
	return palette{title: plain, header: plain, pass: plain, fail: plain, diag: plain}
}

func (p palette) result(ok bool) func(string) string {
	if ok {
		return p.pass
	}

	return p.fail
}

// console writes the per-case report shared by every UI.
type console struct {
	out    io.Writer
	colors palette
}

func (c *console) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *console) start(program string) {
	c.printf("%s\n\n", c.colors.title("Running tests for "+program))
}

func (c *console) caseStart(tc m.TestCase, program, wrapper string) {
	c.printf("%s %s\n", c.colors.header("Test #"+string(tc.Index)), tc.Input)

	verb := "Executing "
	if wrapper != "" {
		verb = "Valgrinding "
	}

	c.printf("%s%s: ", verb, program)
}

func (c *console) resolveError(ix m.TestIndex, err error) {
	c.printf("%s\n\n", c.colors.fail(fmt.Sprintf("Failed to resolve test #%s: %v", ix, err)))
}

func (c *console) fileAccessError(file m.Path) {
	c.printf("%s\n\n", c.colors.fail("Failed to open file "+string(file)))
}

func (c *console) launchError() {
	c.printf("%s\n", c.colors.fail("Error: failed to execute."))
}

func (c *console) execution(result m.ExecutionResult, wrapper string) {
	c.printf("%s\n", c.colors.result(result.ExitCode == 0)(fmt.Sprintf("%d", result.ExitCode)))
	c.printf("User time: %.3fs\n", result.UserTime)
	c.printf("System time: %.3fs\n", result.SystemTime)

	if len(result.Stderr) == 0 {
		return
	}

	style, name := c.colors.fail, "stderr"
	if wrapper != "" {
		style, name = c.colors.diag, "valgrind"
	}

	body := string(result.Stderr)
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	c.printf("%s\n%s%s\n", style(name+" {"), body, style("}"))
}

func (c *console) comparison(matched bool) {
	text := "Output differed!"
	if matched {
		text = "Output matched!"
	}

	c.printf("%s\n", c.colors.result(matched)(text))
}

func (c *console) outcome(outcome m.TestOutcome) {
	text := "Failed!"
	if outcome.Passed() {
		text = "Passed!"
	}

	c.printf("%s\n\n", c.colors.result(outcome.Passed())(text))
}

func (c *console) summary(summary m.SuiteSummary) {
	c.printf("%s\n", c.colors.title("Summary:"))

	if summary.AllPassed() {
		c.printf("%s\n", c.colors.pass("All passed!"))
	} else {
		c.printf("%s\n", c.colors.pass(fmt.Sprintf("%d passed", summary.Passed)))
		c.printf("%s\n", c.colors.fail(fmt.Sprintf("%d failed", summary.Failed())))
	}

	if len(summary.Skipped) > 0 {
		names := make([]string, 0, len(summary.Skipped))
		for _, s := range summary.Skipped {
			names = append(names, "#"+string(s.Index))
		}

		c.printf("%s\n", c.colors.diag(fmt.Sprintf("%d skipped (%s)", len(summary.Skipped), strings.Join(names, ", "))))
	}

	if st := summary.Stats; st.Count > 0 {
		c.printf("User time: min %.3fs, mean %.3fs, p50 %.3fs, p90 %.3fs, max %.3fs\n",
			st.Min, st.Mean, st.P50, st.P90, st.Max)
	}
}

func (c *console) graph(fileName string) {
	c.printf("%s%s\n", c.colors.header("Graph saved to file "), fileName)
}

func (c *console) cases(cases []m.TestCase) error {
	if len(cases) == 0 {
		c.printf("No test cases found\n")
		return nil
	}

	rows := make([][]string, 0, len(cases))
	for _, tc := range cases {
		rows = append(rows, []string{
			string(tc.Index),
			orDash(string(tc.Input)),
			orDash(string(tc.Answer)),
			strings.Join(tc.Args, " "),
		})
	}

	c.table([]string{"Test", "Input", "Answer", "Args"}, rows,
		[]string{fmt.Sprintf("Total %d", len(cases)), "", "", ""})

	return nil
}

func (c *console) runs(runs []m.RunRecord) error {
	if len(runs) == 0 {
		c.printf("No runs recorded\n")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Program,
			fmt.Sprintf("%d/%d", run.Passed, run.Total),
			fmt.Sprintf("%d", run.Skipped),
		})
	}

	c.table([]string{"Run", "Started", "Program", "Passed", "Skipped"}, rows, nil)

	return nil
}

func (c *console) runOutcomes(run m.RunRecord, outcomes []m.TestOutcome) error {
	c.printf("Run %s of %s: %d/%d passed, %d skipped\n", run.ID, run.Program, run.Passed, run.Total, run.Skipped)

	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, outcomeRow(o))
	}

	c.table([]string{"Test", "Input", "Exit", "User", "System", "Output", "Result"}, rows, nil)

	return nil
}

func (c *console) table(header []string, rows [][]string, footer []string) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()
	c.printf("\n%s", tableBuffer.String())
}

func outcomeRow(o m.TestOutcome) []string {
	exit, user, system := "-", "-", "-"
	if o.Status != m.StatusSkipped && o.Status != m.StatusLaunchError {
		exit = fmt.Sprintf("%d", o.ExitCode)
		user = fmt.Sprintf("%.3fs", o.UserTime)
		system = fmt.Sprintf("%.3fs", o.SystemTime)
	}

	return []string{string(o.Index), orDash(string(o.Input)), exit, user, system, o.Output.String(), string(o.Status)}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
