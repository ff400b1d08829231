package adapter

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tptester/internal/model"
)

func applyTransform(t *testing.T, transform OutputTransform, in string) string {
	t.Helper()

	rc, err := transform(m.IntIndex(1), strings.NewReader(in))
	require.NoError(t, err)

	defer func() { _ = rc.Close() }()

	out, err := io.ReadAll(rc)
	require.NoError(t, err)

	return string(out)
}

func TestTrimTrailingSpaceTransform(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "untouched", in: "1 2\n3\n", want: "1 2\n3\n"},
		{name: "trailing blanks", in: "1 2  \n3\t\n", want: "1 2\n3\n"},
		{name: "trailing empty lines", in: "42\n\n\n", want: "42\n"},
		{name: "no final newline", in: "42  ", want: "42"},
		{name: "crlf endings", in: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "only whitespace", in: " \n\n", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyTransform(t, TrimTrailingSpaceTransform, tt.in))
		})
	}
}

func TestCRLFTransform(t *testing.T) {
	assert.Equal(t, "a\nb\n", applyTransform(t, CRLFTransform, "a\r\nb\r\n"))
	assert.Equal(t, "a\rb", applyTransform(t, CRLFTransform, "a\rb"))
}

func TestIdentityTransform(t *testing.T) {
	assert.Equal(t, "a \r\n", applyTransform(t, IdentityTransform, "a \r\n"))
}

func TestTransformByName(t *testing.T) {
	for _, name := range append(TransformNames(), "") {
		transform, err := TransformByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, transform, name)
	}

	_, err := TransformByName("rot13")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rot13")

	assert.Equal(t, []string{TransformCRLF, TransformIdentity, TransformTrimTrailingSpace}, TransformNames())
}

func TestPassThroughStdin(t *testing.T) {
	r := strings.NewReader("x")
	assert.Same(t, r, PassThroughStdin(r))
}
