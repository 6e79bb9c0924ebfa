// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Numeric policy:
//   - validateNaNInf controls whether Set()/FromRows reject NaN/Inf at all.
//   - allowInfDistances is a narrow exception for +Inf as "no edge" in
//     distance matrices. NaN and -Inf remain rejected even when it is on.
package matrix

import "math"

// Numeric policy defaults.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent "no edge".
	DefaultAllowInfDistances = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps               float64 // >= 0; DefaultEpsilon
	validateNaNInf    bool    // DefaultValidateNaNInf
	allowInfDistances bool    // DefaultAllowInfDistances
}

// WithEpsilon sets the tolerance used by ValidateDistances.
// Panics if eps is negative, NaN or Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithAllowInfDistances lets Set accept +Inf ("no edge").
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}

// WithNoNaNInfValidation disables the finite-value guard entirely.
// Intended for controlled ingestion in tests.
func WithNoNaNInfValidation() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the package defaults.
func defaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
	}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
