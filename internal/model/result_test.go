package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestIndex(t *testing.T) {
	assert.Equal(t, TestIndex("12"), IntIndex(12))

	n, ok := IntIndex(-3).Int()
	assert.True(t, ok)
	assert.Equal(t, -3, n)

	_, ok = TestIndex("sample").Int()
	assert.False(t, ok)
}

func TestJudge(t *testing.T) {
	assert.Equal(t, StatusPassed, Judge(0, OutputUnchecked))
	assert.Equal(t, StatusPassed, Judge(0, OutputMatched))
	assert.Equal(t, StatusFailed, Judge(0, OutputDiffered))
	assert.Equal(t, StatusFailed, Judge(1, OutputUnchecked))
	assert.Equal(t, StatusFailed, Judge(1, OutputMatched))
	assert.Equal(t, StatusFailed, Judge(-11, OutputMatched))
}

func TestSuiteSummary(t *testing.T) {
	s := SuiteSummary{Total: 3, Passed: 3}
	assert.Equal(t, 0, s.Failed())
	assert.True(t, s.AllPassed())
	assert.True(t, s.Clean())

	s.Skipped = []SkippedCase{{Index: "4", File: "4.in"}}
	assert.True(t, s.AllPassed())
	assert.False(t, s.Clean())

	s.Passed = 2
	assert.Equal(t, 1, s.Failed())
	assert.False(t, s.AllPassed())
}

func TestOutputMatchString(t *testing.T) {
	assert.Equal(t, "unchecked", OutputUnchecked.String())
	assert.Equal(t, "matched", OutputMatched.String())
	assert.Equal(t, "differed", OutputDiffered.String())
}
