package tsp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrEmptyInput is returned for a 0×0 problem; at least one point is required.
	ErrEmptyInput = errors.New("tsp: empty input")

	// ErrProblemTooLarge is returned when n exceeds Options.MaxPoints, before
	// the 2ⁿ state table is allocated.
	ErrProblemTooLarge = errors.New("tsp: unsupported problem size")

	// ErrNilMatrix is returned for a nil distance matrix.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrInvalidDistance is returned for NaN, negative or -Inf entries.
	ErrInvalidDistance = errors.New("tsp: invalid distance")

	// ErrIncompleteGraph is returned when the matrix admits no Hamiltonian
	// path (or cycle) because required edges are +Inf.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrInvalidOptions is returned for out-of-range Options fields.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrDimensionMismatch is returned by the path utilities for paths that
	// are not permutations of 0..n-1.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")
)

// Mode selects between an open Hamiltonian path and a closed cycle.
type Mode int

const (
	// Path is an open Hamiltonian path; cost excludes any return edge.
	Path Mode = iota
	// Cycle is a closed tour returning to its start; cost includes the closing edge.
	Cycle
)

// String returns "path" or "cycle".
func (m Mode) String() string {
	switch m {
	case Path:
		return "path"
	case Cycle:
		return "cycle"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "path" / "cycle" (case-insensitive); "" means Path.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "path", "open":
		return Path, nil
	case "cycle", "closed", "tour":
		return Cycle, nil
	default:
		return Path, fmt.Errorf("%w: unknown mode %q", ErrInvalidOptions, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != Path && m != Cycle {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidOptions, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Result holds the outcome of Solve.
type Result struct {
	// Path is a permutation of 0..n-1 in reconstruction order:
	// Path[0] is the last visited point, Path[n-1] the first.
	Path []int

	// Cost is the total distance; for Cycle it includes the closing edge.
	Cost float64

	// Mode echoes the mode the result was computed in.
	Mode Mode
}

// Forward returns a fresh copy of Path in travel order (first visited first).
func (r Result) Forward() []int {
	return Reverse(r.Path)
}

// First returns the first visited point, or -1 for an empty result.
func (r Result) First() int {
	if len(r.Path) == 0 {
		return -1
	}

	return r.Path[len(r.Path)-1]
}

// Last returns the last visited point, or -1 for an empty result.
func (r Result) Last() int {
	if len(r.Path) == 0 {
		return -1
	}

	return r.Path[0]
}
