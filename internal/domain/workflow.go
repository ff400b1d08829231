package domain

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/tptester/internal/adapter"
	"github.com/mouse-blink/tptester/internal/controller"
	m "github.com/mouse-blink/tptester/internal/model"
)

// Workflow defines the user-facing operations of the tester.
type Workflow interface {
	// Test runs a suite, then plots and records it when asked to.
	Test(args TestArgs) (m.SuiteSummary, error)
	// List shows the resolved cases without running anything.
	List(args ListArgs) error
	// History shows stored runs, or the outcomes of one of them.
	History(args HistoryArgs) error
}

// GraphArgs requests a plot of user CPU time per case.
type GraphArgs struct {
	Title  string
	XLabel string
	YLabel string
}

// TestArgs holds the arguments of Workflow.Test.
type TestArgs struct {
	Suite SuiteConfig
	// Graph is nil when no plot was requested.
	Graph *GraphArgs
}

// ListArgs holds the arguments of Workflow.List.
type ListArgs struct {
	Indexes  []m.TestIndex
	Resolver adapter.CaseResolver
}

// HistoryArgs holds the arguments of Workflow.History.
type HistoryArgs struct {
	// RunID selects a single run; a unique prefix is enough.
	RunID string
	Limit int
}

type workflow struct {
	runner  SuiteRunner
	ui      controller.UI
	plotter adapter.Plotter
	store   adapter.ReportStore
	logger  *log.Logger
	now     func() time.Time
}

// NewWorkflow creates a new Workflow. store may be nil to disable history.
func NewWorkflow(
	runner SuiteRunner,
	ui controller.UI,
	plotter adapter.Plotter,
	store adapter.ReportStore,
	opts ...Option,
) Workflow {
	o := buildOptions(opts)

	return &workflow{
		runner:  runner,
		ui:      ui,
		plotter: plotter,
		store:   store,
		logger:  o.logger,
		now:     time.Now,
	}
}

func (w *workflow) Test(args TestArgs) (m.SuiteSummary, error) {
	cfg := args.Suite
	if args.Graph != nil {
		cfg.CollectTimings = true
	}

	started := w.now()
	summary := w.runner.RunSuite(cfg)
	finished := w.now()

	var errs error

	if w.store != nil {
		id, err := w.store.SaveRun(m.RunRecord{
			Program:    cfg.Program,
			Wrapper:    cfg.Wrapper,
			StartedAt:  started,
			FinishedAt: finished,
		}, summary)
		if err != nil {
			w.logger.Error("failed to record run", "err", err)
			errs = errors.CombineErrors(errs, errors.Wrap(err, "failed to record run"))
		} else {
			w.logger.Info("recorded run", "id", id)
		}
	}

	if args.Graph != nil {
		name, err := w.plotter.Plot(args.Graph.Title, args.Graph.XLabel, args.Graph.YLabel, summary.Timings)
		if err != nil {
			w.logger.Error("failed to plot graph", "err", err)
			errs = errors.CombineErrors(errs, errors.Wrap(err, "failed to plot graph"))
		} else {
			w.ui.DisplayGraph(name)
		}
	}

	if errs != nil {
		return summary, errs
	}

	if !summary.Clean() {
		return summary, ErrSuiteFailed
	}

	return summary, nil
}

func (w *workflow) List(args ListArgs) error {
	cases := make([]m.TestCase, 0, len(args.Indexes))

	for _, ix := range args.Indexes {
		tc, err := args.Resolver.Resolve(ix)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve case %s", ix)
		}

		cases = append(cases, tc)
	}

	return w.ui.DisplayCases(cases)
}

func (w *workflow) History(args HistoryArgs) error {
	if w.store == nil {
		return ErrHistoryDisabled
	}

	if args.RunID == "" {
		runs, err := w.store.ListRuns(args.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list runs")
		}

		return w.ui.DisplayRuns(runs)
	}

	runs, err := w.store.ListRuns(0)
	if err != nil {
		return errors.Wrap(err, "failed to list runs")
	}

	var matches []m.RunRecord

	for _, run := range runs {
		if strings.HasPrefix(run.ID, args.RunID) {
			matches = append(matches, run)
		}
	}

	switch len(matches) {
	case 0:
		return errors.Wrapf(ErrRunNotFound, "no run with ID %q", args.RunID)
	case 1:
	default:
		return errors.Newf("run ID prefix %q is ambiguous (%d matches)", args.RunID, len(matches))
	}

	outcomes, err := w.store.LoadOutcomes(matches[0].ID)
	if err != nil {
		return errors.Wrapf(err, "failed to load run %s", matches[0].ID)
	}

	return w.ui.DisplayRunOutcomes(matches[0], outcomes)
}
