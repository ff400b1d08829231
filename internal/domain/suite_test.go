package domain

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tptester/internal/adapter"
	adaptermocks "github.com/mouse-blink/tptester/internal/adapter/mocks"
	m "github.com/mouse-blink/tptester/internal/model"
)

// recordingUI keeps a flat log of the calls made by the suite runner.
type recordingUI struct {
	events  []string
	summary m.SuiteSummary
}

func (u *recordingUI) add(format string, args ...any) {
	u.events = append(u.events, fmt.Sprintf(format, args...))
}

func (u *recordingUI) Start(program, _ string, count int) { u.add("start %s %d", program, count) }
func (u *recordingUI) DisplayCaseStart(tc m.TestCase, _, _ string) {
	u.add("case %s", tc.Index)
}
func (u *recordingUI) DisplayResolveError(ix m.TestIndex, _ error) { u.add("resolve-error %s", ix) }
func (u *recordingUI) DisplayFileAccessError(ix m.TestIndex, file m.Path) {
	u.add("file-error %s %s", ix, file)
}
func (u *recordingUI) DisplayLaunchError(ix m.TestIndex, _ error) { u.add("launch-error %s", ix) }
func (u *recordingUI) DisplayExecution(ix m.TestIndex, r m.ExecutionResult, _ string) {
	u.add("exec %s %d", ix, r.ExitCode)
}
func (u *recordingUI) DisplayComparison(ix m.TestIndex, matched bool) {
	u.add("compare %s %t", ix, matched)
}
func (u *recordingUI) DisplayOutcome(o m.TestOutcome) { u.add("outcome %s %s", o.Index, o.Status) }
func (u *recordingUI) DisplaySummary(s m.SuiteSummary) {
	u.summary = s
	u.add("summary")
}
func (u *recordingUI) DisplayGraph(name string) { u.add("graph %s", name) }
func (u *recordingUI) DisplayCases(cases []m.TestCase) error {
	u.add("cases %d", len(cases))
	return nil
}
func (u *recordingUI) DisplayRuns(runs []m.RunRecord) error {
	u.add("runs %d", len(runs))
	return nil
}
func (u *recordingUI) DisplayRunOutcomes(run m.RunRecord, outcomes []m.TestOutcome) error {
	u.add("run %s %d", run.ID, len(outcomes))
	return nil
}

// trackedReader records whether it was closed.
type trackedReader struct {
	io.Reader
	closed bool
}

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

func track(s string) *trackedReader {
	return &trackedReader{Reader: strings.NewReader(s)}
}

// mapResolver serves fixed cases.
type mapResolver map[m.TestIndex]m.TestCase

func (r mapResolver) Resolve(ix m.TestIndex) (m.TestCase, error) {
	tc, ok := r[ix]
	if !ok {
		return m.TestCase{}, errors.Newf("unknown case %s", ix)
	}

	return tc, nil
}

func quietLogger() Option {
	return WithLogger(log.New(io.Discard))
}

func testCase(n int, withAnswer bool) m.TestCase {
	tc := m.TestCase{
		Index: m.IntIndex(n),
		Input: m.Path(fmt.Sprintf("%d.in", n)),
		Args:  []string{},
	}
	if withAnswer {
		tc.Answer = m.Path(fmt.Sprintf("%d.out", n))
	}

	return tc
}

func exited(code int, stdout string, user float64) m.ExecutionResult {
	return m.ExecutionResult{ExitCode: code, Stdout: []byte(stdout), UserTime: user, SystemTime: user / 10}
}

func TestSuiteRunner_PassingCase(t *testing.T) {
	fs := adaptermocks.NewMockCaseFS(t)
	runner := adaptermocks.NewMockProcessRunner(t)
	ui := &recordingUI{}

	input, answer := track("2 2\n"), track("4\n")
	fs.EXPECT().Open(m.Path("1.in")).Return(input, nil)
	fs.EXPECT().Open(m.Path("1.out")).Return(answer, nil)
	runner.EXPECT().Run("./add", []string{}, mock.Anything, "").
		RunAndReturn(func(_ string, _ []string, stdin io.Reader, _ string) (m.ExecutionResult, error) {
			got, err := io.ReadAll(stdin)
			require.NoError(t, err)
			assert.Equal(t, "2 2\n", string(got))

			return exited(0, "4\n", 0.2), nil
		})

	summary := NewSuiteRunner(fs, runner, ui, quietLogger()).RunSuite(SuiteConfig{
		Program:  "./add",
		Indexes:  []m.TestIndex{m.IntIndex(1)},
		Resolver: mapResolver{m.IntIndex(1): testCase(1, true)},
	})

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.True(t, summary.Clean())
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, m.OutputMatched, summary.Outcomes[0].Output)
	assert.Equal(t, 0.2, summary.Outcomes[0].UserTime)
	assert.True(t, input.closed)
	assert.True(t, answer.closed)
	assert.Equal(t, []string{
		"start ./add 1",
		"case 1",
		"exec 1 0",
		"compare 1 true",
		"outcome 1 passed",
		"summary",
	}, ui.events)
}

func TestSuiteRunner_Verdicts(t *testing.T) {
	tests := []struct {
		name       string
		withAnswer bool
		answer     string
		result     m.ExecutionResult
		wantStatus m.CaseStatus
		wantOutput m.OutputMatch
	}{
		{
			name:       "no answer and clean exit passes",
			result:     exited(0, "anything", 0),
			wantStatus: m.StatusPassed,
			wantOutput: m.OutputUnchecked,
		},
		{
			name:       "no answer and non-zero exit fails",
			result:     exited(1, "", 0),
			wantStatus: m.StatusFailed,
			wantOutput: m.OutputUnchecked,
		},
		{
			name:       "matching output with non-zero exit fails",
			withAnswer: true,
			answer:     "ok\n",
			result:     exited(2, "ok\n", 0),
			wantStatus: m.StatusFailed,
			wantOutput: m.OutputMatched,
		},
		{
			name:       "one extra trailing byte fails",
			withAnswer: true,
			answer:     "ok\n",
			result:     exited(0, "ok\n\n", 0),
			wantStatus: m.StatusFailed,
			wantOutput: m.OutputDiffered,
		},
		{
			name:       "killed by a signal fails",
			withAnswer: true,
			answer:     "",
			result:     exited(-9, "", 0),
			wantStatus: m.StatusFailed,
			wantOutput: m.OutputMatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := adaptermocks.NewMockCaseFS(t)
			runner := adaptermocks.NewMockProcessRunner(t)

			fs.EXPECT().Open(m.Path("1.in")).Return(track(""), nil)
			if tt.withAnswer {
				fs.EXPECT().Open(m.Path("1.out")).Return(track(tt.answer), nil)
			}
			runner.EXPECT().Run("./prog", []string{}, mock.Anything, "").Return(tt.result, nil)

			summary := NewSuiteRunner(fs, runner, &recordingUI{}, quietLogger()).RunSuite(SuiteConfig{
				Program:  "./prog",
				Indexes:  []m.TestIndex{m.IntIndex(1)},
				Resolver: mapResolver{m.IntIndex(1): testCase(1, tt.withAnswer)},
			})

			require.Len(t, summary.Outcomes, 1)
			assert.Equal(t, tt.wantStatus, summary.Outcomes[0].Status)
			assert.Equal(t, tt.wantOutput, summary.Outcomes[0].Output)
			assert.Equal(t, 1, summary.Total)
			assert.Equal(t, tt.wantStatus == m.StatusPassed, summary.AllPassed())
		})
	}
}

func TestSuiteRunner_SkipsUnreadableFiles(t *testing.T) {
	fs := adaptermocks.NewMockCaseFS(t)
	runner := adaptermocks.NewMockProcessRunner(t)
	ui := &recordingUI{}

	missing := errors.Mark(errors.Wrap(os.ErrNotExist, "open 2.in"), adapter.ErrFileAccess)
	input3 := track("")

	fs.EXPECT().Open(m.Path("1.in")).Return(track(""), nil)
	fs.EXPECT().Open(m.Path("2.in")).Return(nil, missing)
	fs.EXPECT().Open(m.Path("3.in")).Return(input3, nil)
	fs.EXPECT().Open(m.Path("3.out")).Return(nil, errors.Mark(errors.New("i/o error"), adapter.ErrFileAccess))
	runner.EXPECT().Run("./prog", []string{}, mock.Anything, "").Return(exited(0, "", 0.1), nil).Once()

	summary := NewSuiteRunner(fs, runner, ui, quietLogger()).RunSuite(SuiteConfig{
		Program: "./prog",
		Indexes: []m.TestIndex{m.IntIndex(1), m.IntIndex(2), m.IntIndex(3)},
		Resolver: mapResolver{
			m.IntIndex(1): testCase(1, false),
			m.IntIndex(2): testCase(2, true),
			m.IntIndex(3): testCase(3, true),
		},
		CollectTimings: true,
	})

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.True(t, summary.AllPassed())
	assert.False(t, summary.Clean())
	assert.Equal(t, []m.SkippedCase{
		{Index: m.IntIndex(2), File: "2.in"},
		{Index: m.IntIndex(3), File: "3.out"},
	}, summary.Skipped)
	assert.Equal(t, []m.TimingSample{{Index: m.IntIndex(1), UserTime: 0.1}}, summary.Timings)
	assert.True(t, input3.closed, "input must be released when the answer cannot be opened")
	assert.Contains(t, ui.events, "file-error 2 2.in")
	assert.Contains(t, ui.events, "file-error 3 3.out")
	assert.NotContains(t, ui.events, "case 2")
}

func TestSuiteRunner_LaunchError(t *testing.T) {
	fs := adaptermocks.NewMockCaseFS(t)
	runner := adaptermocks.NewMockProcessRunner(t)
	ui := &recordingUI{}

	input, answer := track(""), track("x")
	fs.EXPECT().Open(m.Path("1.in")).Return(input, nil)
	fs.EXPECT().Open(m.Path("1.out")).Return(answer, nil)
	fs.EXPECT().Open(m.Path("2.in")).Return(track(""), nil)
	runner.EXPECT().Run("./missing", []string{}, mock.Anything, "").
		Return(m.ExecutionResult{ExitCode: -1, UserTime: m.SentinelTime, SystemTime: m.SentinelTime},
			errors.Mark(errors.New("no such file"), adapter.ErrLaunch)).Once()
	runner.EXPECT().Run("./missing", []string{}, mock.Anything, "").Return(exited(0, "", 0.3), nil).Once()

	summary := NewSuiteRunner(fs, runner, ui, quietLogger()).RunSuite(SuiteConfig{
		Program:        "./missing",
		Indexes:        []m.TestIndex{m.IntIndex(1), m.IntIndex(2)},
		Resolver:       mapResolver{m.IntIndex(1): testCase(1, true), m.IntIndex(2): testCase(2, false)},
		CollectTimings: true,
	})

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed())
	assert.Equal(t, m.StatusLaunchError, summary.Outcomes[0].Status)
	assert.Equal(t, m.SentinelTime, summary.Outcomes[0].UserTime)
	assert.Equal(t, []m.TimingSample{{Index: m.IntIndex(2), UserTime: 0.3}}, summary.Timings)
	assert.Equal(t, int64(1), summary.Stats.Count)
	assert.True(t, input.closed)
	assert.True(t, answer.closed)
	assert.Equal(t, []string{
		"start ./missing 2",
		"case 1",
		"launch-error 1",
		"outcome 1 launch-error",
		"case 2",
		"exec 2 0",
		"outcome 2 passed",
		"summary",
	}, ui.events)
}

func TestSuiteRunner_RunErrorAfterStart(t *testing.T) {
	fs := adaptermocks.NewMockCaseFS(t)
	runner := adaptermocks.NewMockProcessRunner(t)
	ui := &recordingUI{}

	input, answer := track(""), track("x")
	fs.EXPECT().Open(m.Path("1.in")).Return(input, nil)
	fs.EXPECT().Open(m.Path("1.out")).Return(answer, nil)
	runner.EXPECT().Run("./prog", []string{}, mock.Anything, "").
		Return(exited(0, "x", 0.2), errors.New("broken pipe"))

	summary := NewSuiteRunner(fs, runner, ui, quietLogger()).RunSuite(SuiteConfig{
		Program:        "./prog",
		Indexes:        []m.TestIndex{m.IntIndex(1)},
		Resolver:       mapResolver{m.IntIndex(1): testCase(1, true)},
		CollectTimings: true,
	})

	outcome := summary.Outcomes[0]
	assert.Equal(t, m.StatusFailed, outcome.Status)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.InDelta(t, 0.2, outcome.UserTime, 1e-9)
	assert.InDelta(t, 0.02, outcome.SystemTime, 1e-9)
	assert.Equal(t, m.OutputUnchecked, outcome.Output)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 0, summary.Passed)
	assert.Equal(t, []m.TimingSample{{Index: m.IntIndex(1), UserTime: 0.2}}, summary.Timings)
	assert.True(t, input.closed)
	assert.True(t, answer.closed)
	assert.Equal(t, []string{
		"start ./prog 1",
		"case 1",
		"exec 1 0",
		"outcome 1 failed",
		"summary",
	}, ui.events)
}

func TestSuiteRunner_TransformsAndStdin(t *testing.T) {
	fs := adaptermocks.NewMockCaseFS(t)
	runner := adaptermocks.NewMockProcessRunner(t)

	fs.EXPECT().Open(m.Path("1.in")).Return(track("from file"), nil)
	fs.EXPECT().Open(m.Path("1.out")).Return(track("HELLO"), nil)

	var seenStdin string

	runner.EXPECT().Run("./prog", []string{}, mock.Anything, adapter.DefaultWrapper).
		RunAndReturn(func(_ string, _ []string, stdin io.Reader, _ string) (m.ExecutionResult, error) {
			data, _ := io.ReadAll(stdin)
			seenStdin = string(data)

			return exited(0, "hello", 0), nil
		})

	var transformed *trackedReader

	summary := NewSuiteRunner(fs, runner, &recordingUI{}, quietLogger()).RunSuite(SuiteConfig{
		Program:  "./prog",
		Indexes:  []m.TestIndex{m.IntIndex(1)},
		Resolver: mapResolver{m.IntIndex(1): testCase(1, true)},
		Wrapper:  adapter.DefaultWrapper,
		Stdin: func(input io.Reader) io.Reader {
			return io.MultiReader(strings.NewReader("header\n"), input)
		},
		Output: func(ix m.TestIndex, stdout io.Reader) (io.ReadCloser, error) {
			assert.Equal(t, m.IntIndex(1), ix)

			data, err := io.ReadAll(stdout)
			require.NoError(t, err)

			transformed = track(strings.ToUpper(string(data)))

			return transformed, nil
		},
	})

	assert.Equal(t, "header\nfrom file", seenStdin)
	assert.Equal(t, m.OutputMatched, summary.Outcomes[0].Output)
	require.NotNil(t, transformed)
	assert.True(t, transformed.closed)
}

func TestSuiteRunner_OrderAndStats(t *testing.T) {
	fs := adaptermocks.NewMockCaseFS(t)
	runner := adaptermocks.NewMockProcessRunner(t)
	ui := &recordingUI{}

	resolver := mapResolver{}
	order := []m.TestIndex{m.IntIndex(3), m.IntIndex(1), m.IntIndex(2)}
	times := map[string]float64{"3": 0.3, "1": 0.1, "2": 0.2}

	for _, ix := range order {
		resolver[ix] = m.TestCase{Index: ix, Args: []string{ix.String()}}
		runner.EXPECT().Run("./prog", []string{ix.String()}, nil, "").Return(exited(0, "", times[ix.String()]), nil).Once()
	}

	summary := NewSuiteRunner(fs, runner, ui, quietLogger()).RunSuite(SuiteConfig{
		Program:        "./prog",
		Indexes:        order,
		Resolver:       resolver,
		CollectTimings: true,
	})

	assert.Equal(t, []m.TimingSample{
		{Index: m.IntIndex(3), UserTime: 0.3},
		{Index: m.IntIndex(1), UserTime: 0.1},
		{Index: m.IntIndex(2), UserTime: 0.2},
	}, summary.Timings)
	assert.Equal(t, []m.TestIndex{m.IntIndex(3), m.IntIndex(1), m.IntIndex(2)},
		[]m.TestIndex{summary.Outcomes[0].Index, summary.Outcomes[1].Index, summary.Outcomes[2].Index})
	assert.Equal(t, int64(3), summary.Stats.Count)
	assert.InDelta(t, 0.1, summary.Stats.Min, 0.001)
	assert.InDelta(t, 0.3, summary.Stats.Max, 0.001)
	assert.Equal(t, summary, ui.summary)
}

func TestSuiteRunner_TimingsOnlyWhenRequested(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	runner.EXPECT().Run("./prog", []string{}, nil, "").Return(exited(0, "", 0.5), nil)

	summary := NewSuiteRunner(nil, runner, &recordingUI{}, quietLogger()).RunSuite(SuiteConfig{
		Program:  "./prog",
		Indexes:  []m.TestIndex{m.IntIndex(1)},
		Resolver: mapResolver{m.IntIndex(1): {Index: m.IntIndex(1), Args: []string{}}},
	})

	assert.Nil(t, summary.Timings)
	assert.Equal(t, int64(1), summary.Stats.Count)
}

func TestSuiteRunner_ResolveError(t *testing.T) {
	ui := &recordingUI{}

	summary := NewSuiteRunner(nil, nil, ui, quietLogger()).RunSuite(SuiteConfig{
		Program:  "./prog",
		Indexes:  []m.TestIndex{"nope"},
		Resolver: mapResolver{},
	})

	assert.Equal(t, 0, summary.Total)
	assert.Len(t, summary.Skipped, 1)
	assert.Equal(t, []string{"start ./prog 1", "resolve-error nope", "summary"}, ui.events)
}

func TestSuiteRunner_AnswerReadError(t *testing.T) {
	fs := adaptermocks.NewMockCaseFS(t)
	runner := adaptermocks.NewMockProcessRunner(t)

	answer := &trackedReader{Reader: iotest.ErrReader(errors.New("disk gone"))}
	fs.EXPECT().Open(m.Path("1.in")).Return(track(""), nil)
	fs.EXPECT().Open(m.Path("1.out")).Return(answer, nil)
	runner.EXPECT().Run("./prog", []string{}, mock.Anything, "").Return(exited(0, "x", 0), nil)

	summary := NewSuiteRunner(fs, runner, &recordingUI{}, quietLogger()).RunSuite(SuiteConfig{
		Program:  "./prog",
		Indexes:  []m.TestIndex{m.IntIndex(1)},
		Resolver: mapResolver{m.IntIndex(1): testCase(1, true)},
	})

	assert.Equal(t, m.StatusFailed, summary.Outcomes[0].Status)
	assert.True(t, answer.closed)
}

func TestSuiteRunner_RealProcess(t *testing.T) {
	cat, err := exec.LookPath("cat")
	if err != nil {
		t.Skip("cat not available")
	}

	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	write("1.in", "hello\n")
	write("1.out", "hello\n")
	write("2.in", "world\n")
	write("2.out", "World\n")

	resolver, err := adapter.NewPatternResolver(
		filepath.Join(dir, "{{.Index}}.in"),
		filepath.Join(dir, "{{.Index}}.out"),
		nil,
	)
	require.NoError(t, err)

	summary := NewSuiteRunner(
		adapter.NewLocalCaseFS(),
		adapter.NewLocalProcessRunner(),
		&recordingUI{},
		quietLogger(),
	).RunSuite(SuiteConfig{
		Program:  cat,
		Indexes:  []m.TestIndex{m.IntIndex(1), m.IntIndex(2), m.IntIndex(3)},
		Resolver: resolver,
	})

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, []m.SkippedCase{{Index: m.IntIndex(3), File: m.Path(filepath.Join(dir, "3.in"))}}, summary.Skipped)
	assert.Equal(t, m.StatusPassed, summary.Outcomes[0].Status)
	assert.Equal(t, m.OutputDiffered, summary.Outcomes[1].Output)
}

func TestSuiteRunner_RealProcessStdinFailure(t *testing.T) {
	cat, err := exec.LookPath("cat")
	if err != nil {
		t.Skip("cat not available")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.in"), []byte("hello\n"), 0o600))

	resolver, err := adapter.NewPatternResolver(filepath.Join(dir, "{{.Index}}.in"), "", nil)
	require.NoError(t, err)

	ui := &recordingUI{}
	summary := NewSuiteRunner(
		adapter.NewLocalCaseFS(),
		adapter.NewLocalProcessRunner(),
		ui,
		quietLogger(),
	).RunSuite(SuiteConfig{
		Program:  cat,
		Indexes:  []m.TestIndex{m.IntIndex(1)},
		Resolver: resolver,
		Stdin: func(io.Reader) io.Reader {
			return iotest.ErrReader(errors.New("stdin gone"))
		},
	})

	outcome := summary.Outcomes[0]
	assert.Equal(t, m.StatusFailed, outcome.Status)
	assert.GreaterOrEqual(t, outcome.UserTime, 0.0)
	assert.GreaterOrEqual(t, outcome.SystemTime, 0.0)
	assert.NotContains(t, ui.events, "launch-error 1")
	assert.Contains(t, ui.events, "outcome 1 failed")
}

func TestSuiteRunner_RealProcessWithoutInput(t *testing.T) {
	echo, err := exec.LookPath("echo")
	if err != nil {
		t.Skip("echo not available")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.out"), []byte("hello\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2.out"), []byte("goodbye\n"), 0o600))

	resolver := mapResolver{
		m.IntIndex(1): {Index: m.IntIndex(1), Answer: m.Path(filepath.Join(dir, "1.out")), Args: []string{"hello"}},
		m.IntIndex(2): {Index: m.IntIndex(2), Answer: m.Path(filepath.Join(dir, "2.out")), Args: []string{"world"}},
	}

	ui := &recordingUI{}
	summary := NewSuiteRunner(
		adapter.NewLocalCaseFS(),
		adapter.NewLocalProcessRunner(),
		ui,
		quietLogger(),
	).RunSuite(SuiteConfig{
		Program:  echo,
		Indexes:  []m.TestIndex{m.IntIndex(1), m.IntIndex(2)},
		Resolver: resolver,
	})

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.Empty(t, summary.Skipped)
	assert.Equal(t, m.StatusPassed, summary.Outcomes[0].Status)
	assert.Equal(t, m.StatusFailed, summary.Outcomes[1].Status)
	assert.Equal(t, m.OutputDiffered, summary.Outcomes[1].Output)
	assert.Equal(t, []string{
		"start " + echo + " 2",
		"case 1",
		"exec 1 0",
		"compare 1 true",
		"outcome 1 passed",
		"case 2",
		"exec 2 0",
		"compare 2 false",
		"outcome 2 failed",
		"summary",
	}, ui.events)
}
