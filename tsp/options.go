package tsp

import (
	"fmt"
	"math/bits"
)

const (
	// DefaultMaxPoints bounds n when Options.MaxPoints is zero.
	// 20 points need a 20·2²⁰ float64 table (~160 MiB).
	DefaultMaxPoints = 20

	// HardMaxPoints is the largest MaxPoints accepted at all.
	HardMaxPoints = 30
)

// Options configures Solve. The zero value is valid: open path, free start,
// DefaultMaxPoints.
type Options struct {
	// Mode selects open path or closed cycle.
	Mode Mode

	// FixedStart pins the first visited point to Start. Cycle mode without
	// FixedStart starts at 0.
	FixedStart bool
	Start      int

	// MaxPoints rejects larger problems with ErrProblemTooLarge before any
	// allocation. 0 means DefaultMaxPoints; must not exceed HardMaxPoints.
	MaxPoints int
}

// DefaultOptions returns the reference configuration: open path, free start.
func DefaultOptions() Options {
	return Options{Mode: Path, MaxPoints: DefaultMaxPoints}
}

// Limit returns the effective size ceiling: MaxPoints, or DefaultMaxPoints
// when MaxPoints is zero.
func (o Options) Limit() int {
	if o.MaxPoints == 0 {
		return DefaultMaxPoints
	}

	return o.MaxPoints
}

// start returns the fixed start vertex, or -1 when the start is free.
func (o Options) start() int {
	if o.FixedStart {
		return o.Start
	}
	if o.Mode == Cycle {
		return 0
	}

	return -1
}

// Validate reports option errors that do not depend on the problem size.
// A start beyond n is only detected by Solve.
func (o Options) Validate() error {
	return validateOptions(o)
}

// validateOptions checks the Options fields that do not depend on n.
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.Mode != Path && o.Mode != Cycle {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidOptions, int(o.Mode))
	}
	if o.MaxPoints < 0 || o.MaxPoints > HardMaxPoints {
		return fmt.Errorf("%w: MaxPoints %d outside [0, %d]", ErrInvalidOptions, o.MaxPoints, HardMaxPoints)
	}
	if o.FixedStart && o.Start < 0 {
		return fmt.Errorf("%w: negative start %d", ErrInvalidOptions, o.Start)
	}

	return nil
}

// validateSize checks n against the ceiling and the start vertex against n,
// and makes sure the n·2ⁿ table length fits in an int.
// Complexity: O(1).
func validateSize(n int, o Options) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if limit := o.Limit(); n > limit {
		return fmt.Errorf("%w: %d points, limit %d", ErrProblemTooLarge, n, limit)
	}
	if n >= bits.UintSize-1 || (1<<(bits.UintSize-2))>>n < n {
		return fmt.Errorf("%w: %d points overflow the state table", ErrProblemTooLarge, n)
	}
	if s := o.start(); s >= n {
		return fmt.Errorf("%w: start %d outside [0, %d)", ErrInvalidOptions, s, n)
	}

	return nil
}
