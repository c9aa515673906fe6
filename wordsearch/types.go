// Package wordsearch provides tunable options and error definitions
// for path search over a gridgraph.Grid.
package wordsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridword/gridgraph"
)

// Sentinel errors for search and validation.
var (
	// ErrNotFound is returned by Search when no path traces the target.
	ErrNotFound = errors.New("wordsearch: target not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wordsearch: invalid option supplied")

	// ErrPathLength indicates a path whose length differs from the target's.
	ErrPathLength = errors.New("wordsearch: path length does not match target")

	// ErrOutOfBounds indicates a path coordinate outside the grid.
	ErrOutOfBounds = errors.New("wordsearch: path coordinate out of bounds")

	// ErrNotAdjacent indicates consecutive path coordinates that are not
	// orthogonal neighbours.
	ErrNotAdjacent = errors.New("wordsearch: consecutive coordinates are not adjacent")

	// ErrCharMismatch indicates a path cell whose character differs from
	// the target character at the same position.
	ErrCharMismatch = errors.New("wordsearch: cell character does not match target")

	// ErrRevisit indicates a path that visits the same cell twice.
	ErrRevisit = errors.New("wordsearch: path revisits a cell")
)

// Path is an ordered sequence of coordinates, one per character of the
// target, where consecutive entries are orthogonal neighbours.
type Path []gridgraph.Coord

// String renders the path as "[(r,c) (r,c) ...]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Mode selects the walking strategy.
type Mode int

const (
	// ModeGreedy walks outward from the rarest character without
	// backtracking inside an extension.
	ModeGreedy Mode = iota
	// ModeExhaustive backtracks depth-first and finds a path whenever one exists.
	ModeExhaustive
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeGreedy:
		return "greedy"
	case ModeExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts "greedy" or "exhaustive" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy", "":
		return ModeGreedy, nil
	case "exhaustive":
		return ModeExhaustive, nil
	}

	return ModeGreedy, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
}

// Option configures a search via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Mode selects the walking strategy. Default ModeGreedy.
	Mode Mode

	// OnAttempt is called when a placement attempt starts: seed is the
	// anchor cell and pos its index in the target.
	OnAttempt func(seed gridgraph.Coord, pos int)

	// OnStep is called whenever a coordinate is written at pos of the
	// working path, including the seed itself.
	OnStep func(at gridgraph.Coord, pos int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with greedy mode and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Mode:      ModeGreedy,
		OnAttempt: func(gridgraph.Coord, int) {},
		OnStep:    func(gridgraph.Coord, int) {},
	}
}

// WithMode selects the walking strategy.
// An unknown mode is recorded as ErrOptionViolation.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeGreedy && m != ModeExhaustive {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithOnAttempt registers a callback run at the start of every attempt.
func WithOnAttempt(fn func(seed gridgraph.Coord, pos int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAttempt = fn
		}
	}
}

// WithOnStep registers a callback run whenever a path slot is filled.
func WithOnStep(fn func(at gridgraph.Coord, pos int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
