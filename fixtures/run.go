package fixtures

import (
	"github.com/katalvlaran/gridword/wordsearch"
)

// Result is the outcome of running one Case.
type Result struct {
	Case Case
	Mode wordsearch.Mode
	// Found reports whether the search produced a path.
	Found bool
	Path  wordsearch.Path
	// Invalid is set when a returned path fails ValidatePath.
	Invalid error
}

// Passed reports whether the outcome matched the expectation with a valid path.
func (r Result) Passed() bool {
	return r.Invalid == nil && r.Found == r.Case.Want
}

// Run executes tc against its matrix. The case's own Mode, when set,
// overrides mode. Extra options (hooks) are passed to the search.
func (c *Catalog) Run(tc Case, mode wordsearch.Mode, opts ...wordsearch.Option) (Result, error) {
	cells, err := c.Matrix(tc.Matrix)
	if err != nil {
		return Result{}, err
	}
	if tc.Mode != "" {
		if mode, err = wordsearch.ParseMode(tc.Mode); err != nil {
			return Result{}, err
		}
	}

	all := make([]wordsearch.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, wordsearch.WithMode(mode))
	path, found := wordsearch.Find(cells, tc.Target, all...)

	res := Result{Case: tc, Mode: mode, Found: found, Path: path}
	if found {
		res.Invalid = wordsearch.ValidatePath(cells, tc.Target, path)
	}

	return res, nil
}

// RunAll runs the main table followed by the edge case table.
func (c *Catalog) RunAll(mode wordsearch.Mode, opts ...wordsearch.Option) ([]Result, error) {
	var results []Result
	for _, table := range [][]Case{c.cases, c.edge} {
		for _, tc := range table {
			res, err := c.Run(tc, mode, opts...)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}

	return results, nil
}

// Tally counts passed results.
func Tally(results []Result) (passed, total int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		}
	}

	return passed, len(results)
}
