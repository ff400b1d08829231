package domain

import "github.com/cockroachdb/errors"

var (
	// ErrSuiteFailed is returned when at least one case failed or was skipped.
	ErrSuiteFailed = errors.New("test suite did not pass")
	// ErrInvalidIndex marks a malformed index set.
	ErrInvalidIndex = errors.New("invalid test index")
	// ErrHistoryDisabled is returned by history queries without a store.
	ErrHistoryDisabled = errors.New("run history is not enabled")
	// ErrRunNotFound is returned when no stored run matches the requested ID.
	ErrRunNotFound = errors.New("run not found")
)
