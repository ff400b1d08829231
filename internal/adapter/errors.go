package adapter

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the adapters. Callers match them with errors.Is.
var (
	// ErrFileAccess marks an input or answer file that could not be opened.
	ErrFileAccess = errors.New("file access error")
	// ErrLaunch marks a program that could not be started at all.
	ErrLaunch = errors.New("failed to launch program")
	// ErrManifest marks an unreadable or malformed suite manifest.
	ErrManifest = errors.New("invalid suite manifest")
	// ErrPattern marks a path or argument pattern that failed to render.
	ErrPattern = errors.New("invalid pattern")
)
