// Package tsp provides the exact tour solver of geotour.
//
// Solve runs the Held–Karp dynamic program over a distance matrix
// (matrix.Matrix) and returns the minimum-cost Hamiltonian path together with
// the order in which it visits the points.
//
//   - Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//   - The DP table is one flat []float64 indexed by mask*n + last, with +Inf
//     marking states that no path has reached yet.
//   - A distance of math.Inf(1) signals "no direct edge"; if no tour exists,
//     Solve returns ErrIncompleteGraph.
//   - Problem size is bounded by Options.MaxPoints (default 20) before any
//     allocation; larger inputs fail with ErrProblemTooLarge.
//
// Modes:
//
//   - Path (default): open Hamiltonian path, free start. The endpoint is the
//     one with the lowest total cost, ties to the lowest index.
//   - Cycle: closed tour that returns to the start vertex (0 unless
//     Options.FixedStart is set); the cost includes the closing edge.
//
// Path order: Result.Path is reconstructed backwards. Path[0] is the last
// visited point and Path[n-1] the first. Use Result.Forward for the travel
// order.
//
// Solve is a pure function: all state is allocated per call, so concurrent
// calls need no synchronisation.
package tsp
