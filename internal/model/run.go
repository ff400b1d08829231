package model

import "time"

// RunRecord describes one stored suite run.
type RunRecord struct {
	ID         string
	Program    string
	Wrapper    string
	StartedAt  time.Time
	FinishedAt time.Time
	Total      int
	Passed     int
	Skipped    int
}

// Failed returns the number of attempted cases that did not pass.
func (r RunRecord) Failed() int {
	return r.Total - r.Passed
}
