package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"github.com/mouse-blink/tptester/internal/adapter"
	"github.com/mouse-blink/tptester/internal/domain"
	m "github.com/mouse-blink/tptester/internal/model"
)

// caseFlags selects the cases of a suite, from patterns or from a manifest.
type caseFlags struct {
	indexes string
	input   string
	answer  string
	args    []string
	suite   string
}

// caseSelection is what caseFlags resolve to.
type caseSelection struct {
	indexes  []m.TestIndex
	resolver adapter.CaseResolver
	// manifest is nil when cases come from patterns.
	manifest *adapter.ManifestResolver
}

func (f *caseFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.indexes, "indexes", "i", "", "test indexes, e.g. 1-10,12,sample")
	flags.StringVar(&f.input, "input", "", "input file pattern, e.g. tests/{{.Index}}.in")
	flags.StringVar(&f.answer, "answer", "", "answer file pattern, e.g. tests/{{.Index}}.out")
	flags.StringArrayVar(&f.args, "arg", nil, "program argument pattern (can be repeated)")
	flags.StringVar(&f.suite, "suite", "", "YAML manifest listing the cases")
}

func (f *caseFlags) resolve() (caseSelection, error) {
	var sel caseSelection

	if f.indexes != "" {
		indexes, err := domain.ParseIndexes(f.indexes)
		if err != nil {
			return sel, err
		}

		sel.indexes = indexes
	}

	if f.suite != "" {
		if f.input != "" || f.answer != "" || len(f.args) > 0 {
			return sel, errors.New("--suite cannot be combined with --input, --answer or --arg")
		}

		manifest, err := adapter.LoadManifest(f.suite)
		if err != nil {
			return sel, err
		}

		sel.manifest = manifest
		sel.resolver = manifest

		if sel.indexes == nil {
			sel.indexes = manifest.Indexes()
		}

		return sel, nil
	}

	if sel.indexes == nil {
		return sel, errors.Mark(errors.New("--indexes is required without --suite"), domain.ErrInvalidIndex)
	}

	resolver, err := adapter.NewPatternResolver(f.input, f.answer, f.args)
	if err != nil {
		return sel, err
	}

	sel.resolver = resolver

	return sel, nil
}
