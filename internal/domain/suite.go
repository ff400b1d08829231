package domain

import (
	"bytes"
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/tptester/internal/adapter"
	"github.com/mouse-blink/tptester/internal/controller"
	m "github.com/mouse-blink/tptester/internal/model"
)

// SuiteConfig describes one suite run.
type SuiteConfig struct {
	Program string
	// Indexes are run in exactly this order.
	Indexes  []m.TestIndex
	Resolver adapter.CaseResolver
	// Wrapper, when set, runs the program inside a diagnostic tool.
	Wrapper string
	// CollectTimings fills SuiteSummary.Timings.
	CollectTimings bool
	// Stdin defaults to adapter.PassThroughStdin.
	Stdin adapter.StdinSelector
	// Output defaults to adapter.IdentityTransform.
	Output adapter.OutputTransform
}

func (c SuiteConfig) stdin() adapter.StdinSelector {
	if c.Stdin == nil {
		return adapter.PassThroughStdin
	}

	return c.Stdin
}

func (c SuiteConfig) output() adapter.OutputTransform {
	if c.Output == nil {
		return adapter.IdentityTransform
	}

	return c.Output
}

// SuiteRunner runs every case of a suite, one after the other.
type SuiteRunner interface {
	RunSuite(cfg SuiteConfig) m.SuiteSummary
}

type suiteRunner struct {
	fs     adapter.CaseFS
	runner adapter.ProcessRunner
	ui     controller.UI
	logger *log.Logger
}

// Option configures a SuiteRunner or Workflow.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// NewSuiteRunner constructs a SuiteRunner backed by the given adapters.
func NewSuiteRunner(fs adapter.CaseFS, runner adapter.ProcessRunner, ui controller.UI, opts ...Option) SuiteRunner {
	o := buildOptions(opts)

	return &suiteRunner{
		fs:     fs,
		runner: runner,
		ui:     ui,
		logger: o.logger,
	}
}

// RunSuite never stops early: every case-level failure is recorded and the
// next index is processed.
func (r *suiteRunner) RunSuite(cfg SuiteConfig) m.SuiteSummary {
	summary := m.SuiteSummary{Program: cfg.Program}
	executed := make([]float64, 0, len(cfg.Indexes))

	r.ui.Start(cfg.Program, cfg.Wrapper, len(cfg.Indexes))

	for _, ix := range cfg.Indexes {
		outcome := r.runCase(cfg, ix)
		summary.Outcomes = append(summary.Outcomes, outcome)

		if outcome.Status == m.StatusSkipped {
			summary.Skipped = append(summary.Skipped, m.SkippedCase{Index: ix, File: outcome.FailedFile})
			continue
		}

		summary.Total++
		if outcome.Passed() {
			summary.Passed++
		}

		if outcome.Status == m.StatusLaunchError {
			continue
		}

		executed = append(executed, outcome.UserTime)

		if cfg.CollectTimings {
			summary.Timings = append(summary.Timings, m.TimingSample{Index: ix, UserTime: outcome.UserTime})
		}
	}

	summary.Stats = NewTimingStats(executed)
	r.ui.DisplaySummary(summary)

	return summary
}

func (r *suiteRunner) runCase(cfg SuiteConfig, ix m.TestIndex) m.TestOutcome {
	tc, err := cfg.Resolver.Resolve(ix)
	if err != nil {
		r.logger.Error("failed to resolve case", "index", ix, "err", err)
		r.ui.DisplayResolveError(ix, err)

		return m.TestOutcome{Index: ix, Status: m.StatusSkipped, UserTime: m.SentinelTime, SystemTime: m.SentinelTime}
	}

	r.logger.Debug("resolved case", "index", ix, "input", tc.Input, "answer", tc.Answer, "args", tc.Args)

	var input, answer io.ReadCloser

	if tc.HasInput() {
		if input, err = r.fs.Open(tc.Input); err != nil {
			return r.skip(tc, tc.Input, err)
		}

		defer r.closeQuietly(tc.Input, input)
	}

	if tc.HasAnswer() {
		if answer, err = r.fs.Open(tc.Answer); err != nil {
			return r.skip(tc, tc.Answer, err)
		}

		defer r.closeQuietly(tc.Answer, answer)
	}

	r.ui.DisplayCaseStart(tc, cfg.Program, cfg.Wrapper)

	var stdin io.Reader
	if input != nil {
		stdin = input
	}

	outcome := m.TestOutcome{Index: ix, Input: tc.Input}

	r.logger.Debug("running program", "program", cfg.Program, "wrapper", cfg.Wrapper, "index", ix)

	result, err := r.runner.Run(cfg.Program, tc.Args, cfg.stdin()(stdin), cfg.Wrapper)
	if errors.Is(err, adapter.ErrLaunch) {
		r.logger.Error("failed to execute program", "index", ix, "err", err)
		r.ui.DisplayLaunchError(ix, err)

		outcome.Status = m.StatusLaunchError
		outcome.ExitCode = result.ExitCode
		outcome.UserTime = m.SentinelTime
		outcome.SystemTime = m.SentinelTime
		r.ui.DisplayOutcome(outcome)

		return outcome
	}

	r.ui.DisplayExecution(ix, result, cfg.Wrapper)

	outcome.ExitCode = result.ExitCode
	outcome.UserTime = result.UserTime
	outcome.SystemTime = result.SystemTime
	outcome.Output = m.OutputUnchecked

	// The child ran but its I/O broke down; the captured output is not
	// trusted.
	if err != nil {
		r.logger.Error("program run did not complete", "index", ix, "err", err)

		outcome.Status = m.StatusFailed
		r.ui.DisplayOutcome(outcome)

		return outcome
	}

	if answer != nil {
		matched, err := r.compare(cfg, ix, result.Stdout, answer)
		if err != nil {
			r.logger.Error("failed to compare output", "index", ix, "err", err)
		}

		outcome.Output = m.OutputDiffered
		if matched {
			outcome.Output = m.OutputMatched
		}

		r.ui.DisplayComparison(ix, matched)
	}

	outcome.Status = m.Judge(result.ExitCode, outcome.Output)
	r.ui.DisplayOutcome(outcome)

	return outcome
}

// compare runs the output transform and checks the result against the answer.
// The transformed stream is always released before returning.
func (r *suiteRunner) compare(cfg SuiteConfig, ix m.TestIndex, stdout []byte, answer io.Reader) (bool, error) {
	out, err := cfg.output()(ix, bytes.NewReader(stdout))
	if err != nil {
		return false, errors.Wrapf(err, "output transform failed for case %s", ix)
	}

	defer r.closeQuietly("transformed output", out)

	return adapter.EqualStreams(answer, out)
}

func (r *suiteRunner) skip(tc m.TestCase, file m.Path, err error) m.TestOutcome {
	if adapter.IsExpectedAccessError(err) {
		r.logger.Warn("skipping case", "index", tc.Index, "file", file, "err", err)
	} else {
		r.logger.Error("skipping case", "index", tc.Index, "file", file, "err", err)
	}

	r.ui.DisplayFileAccessError(tc.Index, file)

	return m.TestOutcome{
		Index:      tc.Index,
		Input:      tc.Input,
		Status:     m.StatusSkipped,
		UserTime:   m.SentinelTime,
		SystemTime: m.SentinelTime,
		FailedFile: file,
	}
}

func (r *suiteRunner) closeQuietly(name any, c io.Closer) {
	if err := c.Close(); err != nil {
		r.logger.Warn("failed to close", "name", name, "err", err)
	}
}
