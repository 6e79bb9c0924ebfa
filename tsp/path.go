// Path utilities.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - PathCost: sum of consecutive distances, optionally closed.
//   - Reverse: fresh reversed copy (reconstruction order ↔ travel order).
//
// Design:
//   - No logging, no panics on user input; errors are the sentinels from types.go.
//   - O(n) time; no mutation of the inputs.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geotour/matrix"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: index %d out of range at position %d", ErrDimensionMismatch, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: index %d repeated at position %d", ErrDimensionMismatch, v, i)
		}
		seen[v] = true
	}

	return nil
}

// PathCost sums dist[path[k]][path[k+1]] for k = 0..len-2 and, if closed,
// adds dist[path[len-1]][path[0]].
//
// Summation starts from dist[path[0]][path[0]] exactly like the solver's base
// case, so PathCost(dist, res.Forward(), res.Mode == Cycle) reproduces
// res.Cost.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (not a
// permutation), ErrInvalidDistance, ErrIncompleteGraph (an edge is +Inf).
//
// Complexity: O(n).
func PathCost(dist matrix.Matrix, path []int, closed bool) (float64, error) {
	n, err := checkShape(dist)
	if err != nil {
		return 0, err
	}
	if err = ValidatePermutation(path, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		k   int
	)
	if sum, err = edge(dist, path[0], path[0]); err != nil {
		return 0, err
	}
	for k = 0; k+1 < n; k++ {
		if w, err = edge(dist, path[k], path[k+1]); err != nil {
			return 0, err
		}
		sum += w
	}
	if closed && n > 1 {
		if w, err = edge(dist, path[n-1], path[0]); err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}

// edge fetches dist[u][v] with the same sentinel semantics as Solve.
// Complexity: O(1).
func edge(dist matrix.Matrix, u, v int) (float64, error) {
	w, err := dist.At(u, v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
	if math.IsNaN(w) || w < 0 {
		return 0, fmt.Errorf("%w: d[%d][%d]=%v", ErrInvalidDistance, u, v, w)
	}
	if math.IsInf(w, 1) {
		return 0, fmt.Errorf("%w: no edge %d→%d", ErrIncompleteGraph, u, v)
	}

	return w, nil
}

// Reverse returns a fresh reversed copy of path (nil for nil).
//
// Complexity: O(n) time, O(n) space.
func Reverse(path []int) []int {
	if path == nil {
		return nil
	}
	out := make([]int, len(path))
	for i, v := range path {
		out[len(path)-1-i] = v
	}

	return out
}
