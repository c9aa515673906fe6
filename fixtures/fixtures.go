// Package fixtures provides the sample matrices and regression case tables
// used by the gridword runner and test suites.
//
// The catalog is decoded once from YAML (the embedded catalog.yaml, or a
// caller-supplied document) into an immutable lookup table from matrix name
// to matrix. Names are case-insensitive.
package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridword/gridgraph"
)

//go:embed catalog.yaml
var embedded []byte

// Sentinel errors for catalog loading and lookup.
var (
	// ErrUnknownMatrix indicates a name that is not in the catalog.
	ErrUnknownMatrix = errors.New("fixtures: unknown matrix")

	// ErrDuplicateMatrix indicates two matrices sharing a name.
	ErrDuplicateMatrix = errors.New("fixtures: duplicate matrix name")

	// ErrInvalidMatrix indicates a non-empty matrix that is not rectangular,
	// or an entry without a name.
	ErrInvalidMatrix = errors.New("fixtures: invalid matrix")

	// ErrInvalidCase indicates a case with an unknown mode.
	ErrInvalidCase = errors.New("fixtures: invalid case")
)

// Case is one regression scenario.
type Case struct {
	Matrix      string `yaml:"matrix"`
	Target      string `yaml:"target"`
	Want        bool   `yaml:"want"`
	Description string `yaml:"description"`
	// Mode pins the search mode ("greedy" or "exhaustive"). Empty means the
	// runner's default.
	Mode string `yaml:"mode,omitempty"`
}

type matrixDoc struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

type document struct {
	Matrices  []matrixDoc `yaml:"matrices"`
	Cases     []Case      `yaml:"cases"`
	EdgeCases []Case      `yaml:"edge_cases"`
}

// Catalog is an immutable set of named matrices and case tables.
type Catalog struct {
	names    []string
	matrices map[string][][]rune
	cases    []Case
	edge     []Case
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog decoded from the embedded catalog.yaml.
// It is decoded once; later calls return the same Catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(bytes.NewReader(embedded))
	})

	return defaultCatalog, defaultErr
}

// LoadFile decodes a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes and validates a catalog from YAML.
// Every case must reference a known matrix and a known mode.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("fixtures: decode: %w", err)
	}

	c := &Catalog{matrices: make(map[string][][]rune, len(doc.Matrices))}
	for _, m := range doc.Matrices {
		name := normalize(m.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: entry without a name", ErrInvalidMatrix)
		}
		if _, dup := c.matrices[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMatrix, m.Name)
		}
		cells := make([][]rune, len(m.Rows))
		for i, row := range m.Rows {
			cells[i] = []rune(row)
		}
		if len(cells) > 0 && len(cells[0]) > 0 {
			if _, err := gridgraph.NewGrid(cells); err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrInvalidMatrix, m.Name, err)
			}
		}
		c.names = append(c.names, name)
		c.matrices[name] = cells
	}

	for _, table := range [][]Case{doc.Cases, doc.EdgeCases} {
		for _, tc := range table {
			if _, ok := c.matrices[normalize(tc.Matrix)]; !ok {
				return nil, fmt.Errorf("%w: %q in case %q", ErrUnknownMatrix, tc.Matrix, tc.Description)
			}
			switch strings.ToLower(tc.Mode) {
			case "", "greedy", "exhaustive":
			default:
				return nil, fmt.Errorf("%w: mode %q in case %q", ErrInvalidCase, tc.Mode, tc.Description)
			}
		}
	}
	c.cases = doc.Cases
	c.edge = doc.EdgeCases

	return c, nil
}

// Names lists matrix names in catalog order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Matrix returns a copy of the named matrix. Lookup is case-insensitive.
func (c *Catalog) Matrix(name string) ([][]rune, error) {
	cells, ok := c.matrices[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatrix, name)
	}
	out := make([][]rune, len(cells))
	for i, row := range cells {
		out[i] = make([]rune, len(row))
		copy(out[i], row)
	}

	return out, nil
}

// Cases returns the main case table.
func (c *Catalog) Cases() []Case {
	return append([]Case(nil), c.cases...)
}

// EdgeCases returns the edge case table.
func (c *Catalog) EdgeCases() []Case {
	return append([]Case(nil), c.edge...)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
