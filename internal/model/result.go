package model

// SentinelTime is the user time recorded for a case whose process could not
// be launched. It is never aggregated or plotted.
const SentinelTime = -1.0

// ExecutionResult captures one invocation of the program under test.
type ExecutionResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	// UserTime and SystemTime are CPU seconds spent by this invocation only.
	UserTime   float64
	SystemTime float64
}

// CaseStatus is the final state of a test case.
type CaseStatus string

const (
	// StatusPassed means the program exited cleanly and the output matched.
	StatusPassed CaseStatus = "passed"
	// StatusFailed covers non-zero exits and output mismatches.
	StatusFailed CaseStatus = "failed"
	// StatusLaunchError means the process could not be created.
	StatusLaunchError CaseStatus = "launch-error"
	// StatusSkipped means an input or answer file could not be opened.
	StatusSkipped CaseStatus = "skipped"
)

// OutputMatch records whether, and how, the output was verified.
type OutputMatch int

// Available OutputMatch values.
const (
	OutputUnchecked OutputMatch = iota
	OutputMatched
	OutputDiffered
)

func (o OutputMatch) String() string {
	switch o {
	case OutputMatched:
		return "matched"
	case OutputDiffered:
		return "differed"
	default:
		return "unchecked"
	}
}

// TestOutcome is the verdict for a single test case.
type TestOutcome struct {
	Index      TestIndex
	Input      Path
	Status     CaseStatus
	ExitCode   int
	UserTime   float64
	SystemTime float64
	Output     OutputMatch
	// FailedFile names the file that could not be opened for skipped cases.
	FailedFile Path
}

// Passed reports whether the case passed.
func (o TestOutcome) Passed() bool {
	return o.Status == StatusPassed
}

// Judge derives the status of an executed case: it passes only on a zero exit
// code with either no answer file or matching output.
func Judge(exitCode int, output OutputMatch) CaseStatus {
	if exitCode != 0 || output == OutputDiffered {
		return StatusFailed
	}

	return StatusPassed
}
