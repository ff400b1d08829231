package adapter

import (
	"bytes"
	"io"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	m "github.com/mouse-blink/tptester/internal/model"
)

// StdinSelector picks the stream handed to the program. input is nil when
// the case has no input file.
type StdinSelector func(input io.Reader) io.Reader

// OutputTransform turns the raw stdout of a case into the stream compared
// against the answer. The returned stream is closed after the comparison.
type OutputTransform func(ix m.TestIndex, stdout io.Reader) (io.ReadCloser, error)

// Names of the built-in output transforms.
const (
	TransformIdentity          = "identity"
	TransformTrimTrailingSpace = "trim-trailing-space"
	TransformCRLF              = "crlf"
)

// PassThroughStdin hands the input file to the program unchanged.
func PassThroughStdin(input io.Reader) io.Reader {
	return input
}

// IdentityTransform compares stdout exactly as produced.
func IdentityTransform(_ m.TestIndex, stdout io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(stdout), nil
}

// TrimTrailingSpaceTransform drops trailing blanks on every line and trailing
// empty lines, keeping a single final newline when the output had one.
func TrimTrailingSpaceTransform(_ m.TestIndex, stdout io.Reader) (io.ReadCloser, error) {
	raw, err := io.ReadAll(stdout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read output")
	}

	lines := bytes.Split(raw, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimRight(line, " \t\r")
	}

	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	out := bytes.Join(lines, []byte("\n"))
	if len(out) > 0 && bytes.HasSuffix(raw, []byte("\n")) {
		out = append(out, '\n')
	}

	return io.NopCloser(bytes.NewReader(out)), nil
}

// CRLFTransform rewrites Windows line endings to a single line feed.
func CRLFTransform(_ m.TestIndex, stdout io.Reader) (io.ReadCloser, error) {
	raw, err := io.ReadAll(stdout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read output")
	}

	return io.NopCloser(bytes.NewReader(bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n")))), nil
}

var transforms = map[string]OutputTransform{
	TransformIdentity:          IdentityTransform,
	TransformTrimTrailingSpace: TrimTrailingSpaceTransform,
	TransformCRLF:              CRLFTransform,
}

// TransformByName looks up a built-in transform. An empty name selects the
// identity transform.
func TransformByName(name string) (OutputTransform, error) {
	if name == "" {
		return IdentityTransform, nil
	}

	t, ok := transforms[name]
	if !ok {
		return nil, errors.Newf("unknown output transform %q (available: %v)", name, TransformNames())
	}

	return t, nil
}

// TransformNames lists the built-in transforms in alphabetical order.
func TransformNames() []string {
	names := lo.Keys(transforms)
	sort.Strings(names)

	return names
}
