package adapter

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/tptester/internal/model"
)

// CaseResolver supplies the files and arguments of a test case. It is asked
// afresh for every index; implementations must not cache across runs.
type CaseResolver interface {
	Resolve(ix m.TestIndex) (m.TestCase, error)
}

// PatternResolver builds case paths and arguments from text/template
// patterns such as "tests/{{.Index}}.in" or `{{printf "%02d" .N}}.in`.
// Sprig functions are available in every pattern. An empty pattern means the
// case has no file for that role.
type PatternResolver struct {
	input  *template.Template
	answer *template.Template
	args   []*template.Template
}

// patternData is the value every pattern is executed against.
type patternData struct {
	Index string
	N     int
}

// NewPatternResolver parses the supplied patterns.
func NewPatternResolver(input, answer string, args []string) (*PatternResolver, error) {
	r := &PatternResolver{}

	var err error

	if r.input, err = parsePattern("input", input); err != nil {
		return nil, err
	}

	if r.answer, err = parsePattern("answer", answer); err != nil {
		return nil, err
	}

	for i, arg := range args {
		tmpl, err := parsePattern("arg", arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}

		r.args = append(r.args, tmpl)
	}

	return r, nil
}

// Resolve implements CaseResolver.
func (r *PatternResolver) Resolve(ix m.TestIndex) (m.TestCase, error) {
	data := patternData{Index: string(ix)}
	if n, ok := ix.Int(); ok {
		data.N = n
	}

	tc := m.TestCase{Index: ix, Args: []string{}}

	input, err := render(r.input, data)
	if err != nil {
		return m.TestCase{}, err
	}

	answer, err := render(r.answer, data)
	if err != nil {
		return m.TestCase{}, err
	}

	tc.Input = m.Path(input)
	tc.Answer = m.Path(answer)

	for _, tmpl := range r.args {
		arg, err := render(tmpl, data)
		if err != nil {
			return m.TestCase{}, err
		}

		tc.Args = append(tc.Args, arg)
	}

	return tc, nil
}

func parsePattern(name, pattern string) (*template.Template, error) {
	if pattern == "" {
		return nil, nil
	}

	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(pattern)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to parse %s pattern %q", name, pattern), ErrPattern)
	}

	return tmpl, nil
}

func render(tmpl *template.Template, data patternData) (string, error) {
	if tmpl == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Mark(errors.Wrapf(err, "failed to render %s pattern", tmpl.Name()), ErrPattern)
	}

	return buf.String(), nil
}
