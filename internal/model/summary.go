package model

// TimingSample pairs a test index with the user CPU time it consumed.
type TimingSample struct {
	Index    TestIndex
	UserTime float64
}

// TimingStats summarises the user CPU time of the executed cases, in seconds.
type TimingStats struct {
	Count int64
	Min   float64
	Mean  float64
	P50   float64
	P90   float64
	Max   float64
}

// SkippedCase records a case that was not run because a file could not be opened.
type SkippedCase struct {
	Index TestIndex
	File  Path
}

// SuiteSummary accumulates the outcome of a whole suite run.
//
// Skipped cases are excluded from Total and Passed and listed separately.
type SuiteSummary struct {
	Program  string
	Total    int
	Passed   int
	Skipped  []SkippedCase
	Outcomes []TestOutcome
	// Timings is only filled when timing collection is enabled.
	Timings []TimingSample
	Stats   TimingStats
}

// Failed returns the number of attempted cases that did not pass.
func (s SuiteSummary) Failed() int {
	return s.Total - s.Passed
}

// AllPassed reports whether every attempted case passed.
func (s SuiteSummary) AllPassed() bool {
	return s.Passed == s.Total
}

// Clean reports whether every case passed and none was skipped.
func (s SuiteSummary) Clean() bool {
	return s.AllPassed() && len(s.Skipped) == 0
}
