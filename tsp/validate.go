// Package tsp - input validation shared by Solve and the path utilities.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix order.
package tsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/geotour/matrix"
)

// checkShape verifies dist is non-nil and square and returns its order.
// n may be 0; validateSize reports that case.
// Complexity: O(1).
func checkShape(dist matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return 0, ErrNilMatrix
		}
		return 0, fmt.Errorf("%w: %d×%d", ErrNonSquare, dist.Rows(), dist.Cols())
	}

	return dist.Rows(), nil
}

// loadDistances copies the n×n matrix dist into a flat row-major slice
// (offset i*n + j) so the DP hot loop does no interface calls.
//
// Contract:
//   - checkShape(dist) returned n.
//   - Entries must be non-negative; +Inf means "no edge"; NaN and -Inf are rejected.
//   - The diagonal is read as-is: the base case uses d[i][i] as the cost of
//     the single-point path {i}.
//
// Complexity: O(n²) time and space.
func loadDistances(dist matrix.Matrix, n int) ([]float64, error) {
	var flat []float64
	if d, ok := dist.(*matrix.Dense); ok {
		flat = d.RowMajor() // fast path: one copy, no per-cell calls
	} else {
		flat = make([]float64, n*n)
		var (
			i, j int
			err  error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if flat[i*n+j], err = dist.At(i, j); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrNonSquare, err)
				}
			}
		}
	}

	var (
		k int
		w float64
	)
	for k, w = range flat {
		if math.IsNaN(w) || w < 0 {
			return nil, fmt.Errorf("%w: d[%d][%d]=%v", ErrInvalidDistance, k/n, k%n, w)
		}
	}

	return flat, nil
}
