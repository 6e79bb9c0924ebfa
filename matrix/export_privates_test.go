// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes the internal options snapshot and panic messages to
// matrix_test without widening the production API.

// OptionsSnapshot is a read-only view of the effective Options.
type OptionsSnapshot struct {
	Eps               float64
	ValidateNaNInf    bool
	AllowInfDistances bool
}

// PanicEpsilonInvalid_TestOnly exposes the WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Eps:               o.eps,
		ValidateNaNInf:    o.validateNaNInf,
		AllowInfDistances: o.allowInfDistances,
	}
}
