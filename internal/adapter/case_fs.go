// Package adapter contains the process, filesystem, storage and rendering
// adapters used by the suite runner.
package adapter

import (
	"io"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/tptester/internal/model"
)

// CaseFS hides the filesystem from the suite runner so that input and answer
// streams can be faked in tests.
type CaseFS interface {
	// Open opens path for reading. Failures are marked with ErrFileAccess.
	Open(path m.Path) (io.ReadCloser, error)
}

// LocalCaseFS opens files from the local disk.
type LocalCaseFS struct{}

// NewLocalCaseFS constructs a LocalCaseFS.
func NewLocalCaseFS() *LocalCaseFS {
	return &LocalCaseFS{}
}

// Open implements CaseFS.
func (a *LocalCaseFS) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - test files are named by the user on purpose
	f, err := os.Open(string(path))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to open %s", path), ErrFileAccess)
	}

	return f, nil
}

// IsExpectedAccessError reports whether err is one of the file errors a suite
// recovers from silently: a missing file or a permission problem.
func IsExpectedAccessError(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}
