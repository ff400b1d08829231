// Package controller provides the console reporters for suite runs.
package controller

import (
	m "github.com/mouse-blink/tptester/internal/model"
)

// UI receives progress from the suite runner and the CLI commands.
// Implementations can use different output methods (plain text, styled, etc).
// Every call for a case happens before the next case starts.
type UI interface {
	Start(program, wrapper string, count int)
	DisplayCaseStart(tc m.TestCase, program, wrapper string)
	DisplayResolveError(ix m.TestIndex, err error)
	DisplayFileAccessError(ix m.TestIndex, file m.Path)
	DisplayLaunchError(ix m.TestIndex, err error)
	DisplayExecution(ix m.TestIndex, result m.ExecutionResult, wrapper string)
	DisplayComparison(ix m.TestIndex, matched bool)
	DisplayOutcome(outcome m.TestOutcome)
	DisplaySummary(summary m.SuiteSummary)
	DisplayGraph(fileName string)

	// DisplayCases lists resolved cases without running them.
	DisplayCases(cases []m.TestCase) error
	// DisplayRuns lists stored runs.
	DisplayRuns(runs []m.RunRecord) error
	// DisplayRunOutcomes shows the stored outcomes of one run.
	DisplayRunOutcomes(run m.RunRecord, outcomes []m.TestOutcome) error
}
