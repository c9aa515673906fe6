package fixtures_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridword/fixtures"
	"github.com/katalvlaran/gridword/wordsearch"
)

// RegressionSuite runs every case of the embedded catalog.
type RegressionSuite struct {
	suite.Suite
	cat *fixtures.Catalog
}

func (s *RegressionSuite) SetupSuite() {
	cat, err := fixtures.Default()
	s.Require().NoError(err)
	s.cat = cat
}

func (s *RegressionSuite) runTable(table []fixtures.Case, mode wordsearch.Mode) {
	for _, tc := range table {
		s.Run(tc.Matrix+"/"+tc.Target, func() {
			res, err := s.cat.Run(tc, mode)
			s.Require().NoError(err)
			s.Require().NoError(res.Invalid)
			s.Equal(tc.Want, res.Found, tc.Description)
		})
	}
}

// TestMainCasesGreedy runs the main table in the default mode.
func (s *RegressionSuite) TestMainCasesGreedy() {
	s.runTable(s.cat.Cases(), wordsearch.ModeGreedy)
}

// TestEdgeCasesGreedy runs the edge case table in the default mode.
func (s *RegressionSuite) TestEdgeCasesGreedy() {
	s.runTable(s.cat.EdgeCases(), wordsearch.ModeGreedy)
}

// TestAllCasesExhaustive runs everything with exhaustive as the default;
// cases pinned to greedy still run greedy.
func (s *RegressionSuite) TestAllCasesExhaustive() {
	results, err := s.cat.RunAll(wordsearch.ModeExhaustive)
	s.Require().NoError(err)
	passed, total := fixtures.Tally(results)
	s.Equal(total, passed)
	s.Equal(len(s.cat.Cases())+len(s.cat.EdgeCases()), total)
}

// TestPinnedModes checks a case's own mode overrides the runner default.
func (s *RegressionSuite) TestPinnedModes() {
	pinned := fixtures.Case{Matrix: "word_search", Target: "CODE", Want: true, Mode: "exhaustive"}
	res, err := s.cat.Run(pinned, wordsearch.ModeGreedy)
	s.Require().NoError(err)
	s.Equal(wordsearch.ModeExhaustive, res.Mode)
	s.True(res.Passed())
}

// TestPaths pins a few concrete paths from the sample tables.
func (s *RegressionSuite) TestPaths() {
	res, err := s.cat.Run(fixtures.Case{Matrix: "repeat", Target: "AAB", Want: true}, wordsearch.ModeGreedy)
	s.Require().NoError(err)
	s.Equal("[(2,2) (1,2) (1,1)]", res.Path.String())

	res, err = s.cat.Run(fixtures.Case{Matrix: "large", Target: "WERT", Want: true}, wordsearch.ModeGreedy)
	s.Require().NoError(err)
	s.Equal("[(0,1) (0,2) (0,3) (0,4)]", res.Path.String())
}

func TestRegressionSuite(t *testing.T) {
	suite.Run(t, new(RegressionSuite))
}

func TestCatalogLookup(t *testing.T) {
	cat, err := fixtures.Default()
	require.NoError(t, err)

	names := cat.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, []string{"simple", "word", "repeat", "large"}, names[:4])

	m, err := cat.Matrix("SIMPLE")
	require.NoError(t, err)
	assert.Equal(t, [][]rune{[]rune("ABC"), []rune("DEF"), []rune("GHI")}, m)

	// Mutating the returned copy leaves the catalog intact.
	m[0][0] = 'Z'
	again, err := cat.Matrix("simple")
	require.NoError(t, err)
	assert.Equal(t, 'A', again[0][0])

	empty, err := cat.Matrix("empty")
	require.NoError(t, err)
	assert.Empty(t, empty)

	emptyRow, err := cat.Matrix("empty_row")
	require.NoError(t, err)
	assert.Equal(t, [][]rune{{}}, emptyRow)
	assert.NotNil(t, emptyRow[0], "empty rows stay non-nil")

	_, err = cat.Matrix("nope")
	assert.ErrorIs(t, err, fixtures.ErrUnknownMatrix)

	_, err = cat.Run(fixtures.Case{Matrix: "nope", Target: "A"}, wordsearch.ModeGreedy)
	assert.ErrorIs(t, err, fixtures.ErrUnknownMatrix)
}

func TestDefaultIsShared(t *testing.T) {
	a, err := fixtures.Default()
	require.NoError(t, err)
	b, err := fixtures.Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "Duplicate",
			doc:  "matrices:\n  - {name: a, rows: [AB]}\n  - {name: A, rows: [CD]}\n",
			err:  fixtures.ErrDuplicateMatrix,
		},
		{
			name: "Unnamed",
			doc:  "matrices:\n  - {rows: [AB]}\n",
			err:  fixtures.ErrInvalidMatrix,
		},
		{
			name: "Ragged",
			doc:  "matrices:\n  - {name: a, rows: [AB, C]}\n",
			err:  fixtures.ErrInvalidMatrix,
		},
		{
			name: "UnknownMatrix",
			doc:  "matrices:\n  - {name: a, rows: [AB]}\ncases:\n  - {matrix: b, target: A, want: false}\n",
			err:  fixtures.ErrUnknownMatrix,
		},
		{
			name: "UnknownEdgeMatrix",
			doc:  "edge_cases:\n  - {matrix: b, target: A, want: false}\n",
			err:  fixtures.ErrUnknownMatrix,
		},
		{
			name: "BadMode",
			doc:  "matrices:\n  - {name: a, rows: [AB]}\ncases:\n  - {matrix: a, target: A, want: true, mode: dfs}\n",
			err:  fixtures.ErrInvalidCase,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixtures.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := fixtures.Load(strings.NewReader("matrices: {not: [a list"))
	require.Error(t, err)
}

func TestLoadEmptyDocument(t *testing.T) {
	cat, err := fixtures.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cat.Names())
	assert.Empty(t, cat.Cases())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := "matrices:\n  - name: Tiny\n    rows: [AB, CD]\ncases:\n  - {matrix: tiny, target: ABD, want: true, description: corner}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cat, err := fixtures.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"tiny"}, cat.Names())

	results, err := cat.RunAll(wordsearch.ModeGreedy)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed())
	assert.Equal(t, "[(0,0) (0,1) (1,1)]", results[0].Path.String())

	_, err = fixtures.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestTally(t *testing.T) {
	results := []fixtures.Result{
		{Case: fixtures.Case{Want: true}, Found: true},
		{Case: fixtures.Case{Want: false}, Found: true},
		{Case: fixtures.Case{Want: false}, Found: false},
		{Case: fixtures.Case{Want: true}, Found: true, Invalid: wordsearch.ErrRevisit},
	}
	passed, total := fixtures.Tally(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 4, total)
}
