// Package matrix provides the dense numeric storage used by geotour.
//
// The package offers:
//
//   - Matrix, a minimal interface over a two-dimensional float64 array with
//     bounds-checked At/Set (errors instead of panics) and deep Clone.
//   - Dense, a row-major implementation backed by one flat slice
//     (offset = i*cols + j), used for haversine distance matrices.
//   - Validators that check the invariants a distance matrix must hold:
//     square shape, zero diagonal, symmetry within a tolerance.
//
// All failures are reported through the sentinel errors in errors.go and
// should be matched with errors.Is.
package matrix
