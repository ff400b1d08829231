package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tptester/internal/adapter"
	"github.com/mouse-blink/tptester/internal/domain"
	domainmocks "github.com/mouse-blink/tptester/internal/domain/mocks"
	m "github.com/mouse-blink/tptester/internal/model"
)

// captureTest records the TestArgs the run command builds.
func captureTest(t *testing.T, wf *domainmocks.MockWorkflow, summary m.SuiteSummary, err error) *domain.TestArgs {
	t.Helper()

	var got domain.TestArgs

	wf.EXPECT().Test(mock.Anything).
		RunAndReturn(func(args domain.TestArgs) (m.SuiteSummary, error) {
			got = args
			return summary, err
		}).Once()

	return &got
}

func TestRunCmd_Patterns(t *testing.T) {
	wf := domainmocks.NewMockWorkflow(t)
	got := captureTest(t, wf, summaryOf(3, 3), nil)

	cli := &testCLI{}
	_, err := cli.execute(t, wf, "run", "./prog", "-i", "1-3",
		"--input", "tests/{{.Index}}.in",
		"--answer", `tests/{{printf "%02d" .N}}.out`,
		"--arg", "--case={{.N}}")
	require.NoError(t, err)

	assert.Equal(t, "./prog", got.Suite.Program)
	assert.Equal(t, []m.TestIndex{"1", "2", "3"}, got.Suite.Indexes)
	assert.Empty(t, got.Suite.Wrapper)
	assert.Nil(t, got.Graph)
	assert.Empty(t, cli.historyPath)

	tc, err := got.Suite.Resolver.Resolve("2")
	require.NoError(t, err)
	assert.Equal(t, m.TestCase{Index: "2", Input: "tests/2.in", Answer: "tests/02.out", Args: []string{"--case=2"}}, tc)

	out, err := got.Suite.Output("2", strings.NewReader("a  \n"))
	require.NoError(t, err)
	assert.Equal(t, "a  \n", readAll(t, out), "identity transform by default")
}

func TestRunCmd_Wrapper(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "valgrind uses the default wrapper", args: []string{"--valgrind"}, want: adapter.DefaultWrapper},
		{name: "explicit wrapper implies wrapper mode", args: []string{"--wrapper", "/opt/bin/drmemory"}, want: "/opt/bin/drmemory"},
		{name: "no wrapper by default", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := domainmocks.NewMockWorkflow(t)
			got := captureTest(t, wf, summaryOf(1, 1), nil)

			cli := &testCLI{}
			_, err := cli.execute(t, wf, append([]string{"run", "./prog", "-i", "1"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Suite.Wrapper)
		})
	}
}

func TestRunCmd_Graph(t *testing.T) {
	wf := domainmocks.NewMockWorkflow(t)
	got := captureTest(t, wf, summaryOf(1, 1), nil)

	cli := &testCLI{}
	_, err := cli.execute(t, wf, "run", "./prog", "-i", "1", "--graph", "--graph-title", "Sorting")
	require.NoError(t, err)

	require.NotNil(t, got.Graph)
	assert.Equal(t, domain.GraphArgs{Title: "Sorting", XLabel: adapter.DefaultGraphX, YLabel: adapter.DefaultGraphY}, *got.Graph)
}

func TestRunCmd_OutputTransform(t *testing.T) {
	wf := domainmocks.NewMockWorkflow(t)
	got := captureTest(t, wf, summaryOf(1, 1), nil)

	cli := &testCLI{}
	_, err := cli.execute(t, wf, "run", "./prog", "-i", "1", "--output-transform", adapter.TransformTrimTrailingSpace)
	require.NoError(t, err)

	out, err := got.Suite.Output("1", strings.NewReader("a  \n\n"))
	require.NoError(t, err)
	assert.Equal(t, "a\n", readAll(t, out))
}

func TestRunCmd_Manifest(t *testing.T) {
	dir := t.TempDir()
	suite := writeFile(t, dir, "suite.yaml", `
program: bin/solution
output: crlf
cases:
  - index: small
    input: small.in
    answer: small.out
  - index: large
    input: large.in
`)

	t.Run("program, cases and transform come from the manifest", func(t *testing.T) {
		wf := domainmocks.NewMockWorkflow(t)
		got := captureTest(t, wf, summaryOf(2, 2), nil)

		cli := &testCLI{}
		_, err := cli.execute(t, wf, "run", "--suite", suite)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "bin", "solution"), got.Suite.Program)
		assert.Equal(t, []m.TestIndex{"small", "large"}, got.Suite.Indexes)

		tc, err := got.Suite.Resolver.Resolve("small")
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(dir, "small.out")), tc.Answer)

		out, err := got.Suite.Output("small", strings.NewReader("x\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "x\n", readAll(t, out))
	})

	t.Run("command line overrides the manifest", func(t *testing.T) {
		wf := domainmocks.NewMockWorkflow(t)
		got := captureTest(t, wf, summaryOf(1, 1), nil)

		cli := &testCLI{}
		_, err := cli.execute(t, wf, "run", "./other", "--suite", suite, "-i", "large", "--output-transform", "identity")
		require.NoError(t, err)

		assert.Equal(t, "./other", got.Suite.Program)
		assert.Equal(t, []m.TestIndex{"large"}, got.Suite.Indexes)

		out, err := got.Suite.Output("large", strings.NewReader("x\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "x\r\n", readAll(t, out))
	})

	t.Run("patterns cannot be mixed with a manifest", func(t *testing.T) {
		cli := &testCLI{}
		_, err := cli.execute(t, nil, "run", "--suite", suite, "--input", "{{.Index}}.in")
		require.Error(t, err)
		assert.False(t, cli.factoryUsed)
	})
}

func TestRunCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "tptester.yaml", `
valgrind: true
wrapper: /opt/valgrind
graph:
  enabled: true
  title: From config
history:
  path: `+filepath.Join(dir, "h.db")+`
`)

	wf := domainmocks.NewMockWorkflow(t)
	got := captureTest(t, wf, summaryOf(1, 1), nil)

	cli := &testCLI{}
	_, err := cli.execute(t, wf, "--config", config, "run", "./prog", "-i", "1", "--graph-x", "Size")
	require.NoError(t, err)

	assert.Equal(t, "/opt/valgrind", got.Suite.Wrapper)
	require.NotNil(t, got.Graph)
	assert.Equal(t, "From config", got.Graph.Title)
	assert.Equal(t, "Size", got.Graph.XLabel)
	assert.Equal(t, filepath.Join(dir, "h.db"), cli.historyPath)
}

func TestRunCmd_History(t *testing.T) {
	t.Run("bare flag uses the default database", func(t *testing.T) {
		wf := domainmocks.NewMockWorkflow(t)
		captureTest(t, wf, summaryOf(1, 1), nil)

		cli := &testCLI{}
		_, err := cli.execute(t, wf, "run", "./prog", "-i", "1", "--history")
		require.NoError(t, err)
		assert.Equal(t, adapter.DefaultReportStorePath(), cli.historyPath)
	})

	t.Run("explicit path", func(t *testing.T) {
		wf := domainmocks.NewMockWorkflow(t)
		captureTest(t, wf, summaryOf(1, 1), nil)

		cli := &testCLI{}
		_, err := cli.execute(t, wf, "run", "./prog", "-i", "1", "--history=/tmp/runs.db")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/runs.db", cli.historyPath)
	})
}

func TestRunCmd_Errors(t *testing.T) {
	t.Run("suite failure is returned", func(t *testing.T) {
		wf := domainmocks.NewMockWorkflow(t)
		captureTest(t, wf, summaryOf(1, 2), domain.ErrSuiteFailed)

		cli := &testCLI{}
		_, err := cli.execute(t, wf, "run", "./prog", "-i", "1-2")
		assert.True(t, errors.Is(err, domain.ErrSuiteFailed))
	})

	tests := map[string][]string{
		"missing indexes":   {"run", "./prog"},
		"missing program":   {"run", "-i", "1"},
		"bad pattern":       {"run", "./prog", "-i", "1", "--input", "{{.Index"},
		"unknown transform": {"run", "./prog", "-i", "1", "--output-transform", "shout"},
		"unreadable suite":  {"run", "--suite", "/nonexistent/suite.yaml"},
		"too many args":     {"run", "./a", "./b", "-i", "1"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			cli := &testCLI{}
			_, err := cli.execute(t, nil, args...)
			require.Error(t, err)
			assert.False(t, cli.factoryUsed, "no workflow should be built for invalid input")
		})
	}
}
