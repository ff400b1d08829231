// Package model defines the data structures for running test suites.
package model

import "strconv"

// TestIndex names one test case. Integer indices are kept in decimal form.
type TestIndex string

// IntIndex converts a numeric test number into a TestIndex.
func IntIndex(n int) TestIndex {
	return TestIndex(strconv.Itoa(n))
}

// Int returns the numeric value of the index, if it has one.
func (ix TestIndex) Int() (int, bool) {
	n, err := strconv.Atoi(string(ix))
	if err != nil {
		return 0, false
	}

	return n, true
}

func (ix TestIndex) String() string {
	return string(ix)
}

// Path represents a file system path.
type Path string

// TestCase holds everything resolved for a single index.
type TestCase struct {
	Index TestIndex
	// Input is fed to the program's stdin. Empty means no input.
	Input Path
	// Answer is the expected stdout. Empty means the output is not checked.
	Answer Path
	Args   []string
}

// HasInput reports whether the case reads stdin from a file.
func (c TestCase) HasInput() bool {
	return c.Input != ""
}

// HasAnswer reports whether the case output is verified.
func (c TestCase) HasAnswer() bool {
	return c.Answer != ""
}
