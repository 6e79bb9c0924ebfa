package tsp

import (
	"math"

	"github.com/katalvlaran/geotour/matrix"
)

// HeldKarp solves dist with DefaultOptions: the minimum-cost open
// Hamiltonian path with a free start. The cost has no return leg, so two
// points cost d[0][1]; use Solve with Mode Cycle for the round trip (2·d[0][1]).
func HeldKarp(dist matrix.Matrix) (Result, error) {
	return Solve(dist, DefaultOptions())
}

// Solve computes the minimum-cost Hamiltonian path (or cycle, see
// Options.Mode) over dist using the Held–Karp dynamic program.
//
// The input is an n×n matrix where dist[i][j] is the cost to go from i to j.
// math.Inf(1) marks a missing edge. dist[i][i] is used as the cost of the
// single-point path {i} and is 0 for a proper distance matrix.
//
// Stages:
//  1. Validate options, shape and size before allocating the 2ⁿ table.
//  2. Fill dp[mask][last] in increasing mask order.
//  3. Pick the cheapest endpoint of the full mask (lowest index on ties).
//  4. Backtrack predecessors to reconstruct Result.Path (last visited first).
//
// Errors: ErrInvalidOptions, ErrNilMatrix, ErrNonSquare, ErrEmptyInput,
// ErrProblemTooLarge, ErrInvalidDistance, ErrIncompleteGraph.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func Solve(dist matrix.Matrix, opts Options) (Result, error) {
	// --- 1. Validate ---
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	n, err := checkShape(dist)
	if err != nil {
		return Result{}, err
	}
	if err = validateSize(n, opts); err != nil {
		return Result{}, err
	}
	d, err := loadDistances(dist, n)
	if err != nil {
		return Result{}, err
	}

	// --- 2. Fill ---
	start := opts.start()
	dp := fillTable(d, n, start)

	// --- 3. Endpoint ---
	full := uint(1)<<uint(n) - 1
	closeTo := -1
	if opts.Mode == Cycle && n > 1 {
		closeTo = start // a single point has no closing edge
	}
	last, cost := bestEndpoint(dp, d, n, full, closeTo)
	if last < 0 {
		return Result{}, ErrIncompleteGraph
	}

	// --- 4. Backtrack ---
	path, ok := backtrack(dp, d, n, full, last)
	if !ok {
		return Result{}, ErrIncompleteGraph
	}

	return Result{Path: path, Cost: cost, Mode: opts.Mode}, nil
}

// fillTable allocates the flat DP table and runs the forward relaxation.
//
// dp[mask*n+last] = minimum cost of a path that visits exactly the points in
// mask and ends at last; +Inf means no such path was found (yet).
//
// Base case: dp[{i}][i] = d[i][i] for every i, or only for start when the
// start is fixed (start >= 0).
//
// Every mask is derived only from strict sub-masks, so processing masks in
// increasing numeric order finalises each mask before it is extended.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space.
func fillTable(d []float64, n int, start int) []float64 {
	states := 1 << uint(n)
	dp := make([]float64, states*n)
	inf := math.Inf(1)
	for k := range dp {
		dp[k] = inf
	}

	var i int
	for i = 0; i < n; i++ {
		if start >= 0 && i != start {
			continue
		}
		dp[(1<<uint(i))*n+i] = d[i*n+i]
	}

	var (
		mask, next uint
		last       int
		row        int     // mask*n, offset of the current mask's row
		cur        float64 // dp[mask][last]
		w          float64 // d[last][next]
		cand       float64
		idx        int
	)
	for mask = 1; mask < uint(states); mask++ {
		row = int(mask) * n
		for last = 0; last < n; last++ {
			if mask&(1<<uint(last)) == 0 {
				continue // last not in subset
			}
			cur = dp[row+last]
			if math.IsInf(cur, 1) {
				continue // unreachable state
			}
			for next = 0; next < uint(n); next++ {
				if mask&(1<<next) != 0 {
					continue // already visited
				}
				w = d[last*n+int(next)]
				if math.IsInf(w, 1) {
					continue // no edge last→next
				}
				cand = cur + w
				idx = int(mask|1<<next)*n + int(next)
				if cand < dp[idx] {
					dp[idx] = cand
				}
			}
		}
	}

	return dp
}

// bestEndpoint scans dp[full][last] in ascending order and returns the
// first index with the strictly smallest total. For cycles (closeTo >= 0)
// the closing edge d[last][closeTo] is added. Returns (-1, +Inf) if every
// total is infinite.
//
// Complexity: O(n).
func bestEndpoint(dp, d []float64, n int, full uint, closeTo int) (int, float64) {
	var (
		best  = -1
		cost  = math.Inf(1)
		row   = int(full) * n
		last  int
		total float64
	)
	for last = 0; last < n; last++ {
		total = dp[row+last]
		if closeTo >= 0 {
			total += d[last*n+closeTo]
		}
		if total < cost {
			best, cost = last, total
		}
	}

	return best, cost
}

// backtrack rebuilds the path from the chosen endpoint back to the start.
//
// At each step the current point is removed from mask and the predecessor is
// the j in mask minimising dp[mask][j] + d[j][current], ties to the lowest j.
// path[0] = last, path[n-1] = first visited.
//
// ok is false only if some step finds no finite predecessor, which cannot
// happen when the endpoint cost is finite.
//
// Complexity: O(n²).
func backtrack(dp, d []float64, n int, full uint, last int) ([]int, bool) {
	path := make([]int, n)
	path[0] = last

	var (
		mask    = full ^ 1<<uint(last)
		current = last
		step, j int
		bestJ   int
		bestV   float64
		v       float64
	)
	for step = 1; step < n; step++ {
		bestJ, bestV = -1, math.Inf(1)
		for j = 0; j < n; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue
			}
			v = dp[int(mask)*n+j] + d[j*n+current]
			if bestJ < 0 || v < bestV {
				bestJ, bestV = j, v
			}
		}
		if bestJ < 0 || math.IsInf(bestV, 1) {
			return nil, false
		}
		path[step] = bestJ
		mask ^= 1 << uint(bestJ)
		current = bestJ
	}

	return path, true
}
