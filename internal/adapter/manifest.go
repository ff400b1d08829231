package adapter

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/tptester/internal/model"
)

// Manifest is the YAML description of a suite.
//
//	program: ./solution
//	output: trim-trailing-space
//	cases:
//	  - index: 1
//	    input: tests/1.in
//	    answer: tests/1.out
//	    args: ["--quiet"]
type Manifest struct {
	Program string         `yaml:"program"`
	Output  string         `yaml:"output"`
	Cases   []ManifestCase `yaml:"cases"`
}

// ManifestCase is one entry of a manifest. A missing index defaults to the
// 1-based position of the entry.
type ManifestCase struct {
	Index  string   `yaml:"index"`
	Input  string   `yaml:"input"`
	Answer string   `yaml:"answer"`
	Args   []string `yaml:"args"`
}

// ManifestResolver resolves cases from a loaded manifest.
type ManifestResolver struct {
	dir      string
	manifest Manifest
	indexes  []m.TestIndex
	cases    map[m.TestIndex]ManifestCase
}

// LoadManifest reads and validates the manifest at path. Relative file names
// inside it are resolved against the manifest's directory.
func LoadManifest(path string) (*ManifestResolver, error) {
	// #nosec G304 - manifest path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", path), ErrManifest)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "resolving %s", path), ErrManifest)
	}

	return ParseManifest(data, dir)
}

// ParseManifest decodes manifest YAML. dir anchors relative paths.
func ParseManifest(data []byte, dir string) (*ManifestResolver, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parsing manifest"), ErrManifest)
	}

	r := &ManifestResolver{
		dir:      dir,
		manifest: manifest,
		indexes:  make([]m.TestIndex, 0, len(manifest.Cases)),
		cases:    make(map[m.TestIndex]ManifestCase, len(manifest.Cases)),
	}

	for pos, c := range manifest.Cases {
		ix := m.TestIndex(c.Index)
		if ix == "" {
			ix = m.TestIndex(strconv.Itoa(pos + 1))
		}

		if _, dup := r.cases[ix]; dup {
			return nil, errors.Mark(errors.Newf("duplicate case index %q", ix), ErrManifest)
		}

		r.cases[ix] = c
		r.indexes = append(r.indexes, ix)
	}

	if _, err := TransformByName(manifest.Output); err != nil {
		return nil, errors.Mark(err, ErrManifest)
	}

	return r, nil
}

// Indexes returns the case indices in manifest order.
func (r *ManifestResolver) Indexes() []m.TestIndex {
	return append([]m.TestIndex(nil), r.indexes...)
}

// Program returns the program named by the manifest, resolved against the
// manifest directory when it contains a path separator.
func (r *ManifestResolver) Program() string {
	program := r.manifest.Program
	if program == "" || filepath.IsAbs(program) || filepath.Base(program) == program {
		return program
	}

	return filepath.Join(r.dir, program)
}

// OutputTransform returns the name of the manifest's output transform.
func (r *ManifestResolver) OutputTransform() string {
	return r.manifest.Output
}

// Resolve implements CaseResolver.
func (r *ManifestResolver) Resolve(ix m.TestIndex) (m.TestCase, error) {
	c, ok := r.cases[ix]
	if !ok {
		return m.TestCase{}, errors.Mark(errors.Newf("no case with index %q", ix), ErrManifest)
	}

	return m.TestCase{
		Index:  ix,
		Input:  r.path(c.Input),
		Answer: r.path(c.Answer),
		Args:   append([]string{}, c.Args...),
	}, nil
}

func (r *ManifestResolver) path(name string) m.Path {
	if name == "" || filepath.IsAbs(name) {
		return m.Path(name)
	}

	return m.Path(filepath.Join(r.dir, name))
}
