// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: a minimal matrix implementation, deterministic point
// generators and an exhaustive permutation oracle.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// epsCost is the tolerance for comparing path costs in kilometres.
	epsCost = 1e-9

	// seedDet is the deterministic seed used by the random instance generator.
	seedDet = int64(20240611)

	// oracleMaxN bounds the brute-force oracle (8! = 40320 permutations).
	oracleMaxN = 8
)

// testDense is a simple [][]float64 matrix with bounds-checked At/Set and no
// numeric policy, so tests can inject +Inf, NaN and negative entries.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// square returns an n×n testDense filled with v off the diagonal.
func square(n int, v float64) testDense {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			if i != j {
				a[i][j] = v
			}
		}
	}

	return testDense{a: a}
}

// cycle4 is the 4-node ring metric: neighbours 1 apart, opposite nodes 2.
func cycle4() testDense {
	return testDense{a: [][]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	}}
}

// unitSquare is the 1°×1° square at (0,0),(0,1),(1,1),(1,0).
func unitSquare() []geo.Point {
	return []geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 1},
		{Lat: 1, Lon: 0},
	}
}

// randomPoints generates n deterministic points for a given seed.
func randomPoints(seed int64, n int) []geo.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geo.Point, n)
	for i := range pts {
		pts[i] = geo.Point{
			Lat: rng.Float64()*120 - 60,
			Lon: rng.Float64()*360 - 180,
		}
	}

	return pts
}

// mustDistances builds the haversine matrix or fails the test.
func mustDistances(t testing.TB, pts []geo.Point) *matrix.Dense {
	t.Helper()
	d, err := geo.DistanceMatrix(pts)
	require.NoError(t, err)

	return d
}

// rows extracts a [][]float64 view of m for the oracle.
func rows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	n := m.Rows()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// bruteForce enumerates every visiting order and returns the minimum cost.
// start < 0 leaves the first point free; closed adds the return edge.
func bruteForce(d [][]float64, closed bool, start int) float64 {
	n := len(d)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)

	var permute func(k int)
	permute = func(k int) {
		if k == n {
			if start >= 0 && perm[0] != start {
				return
			}
			cost := d[perm[0]][perm[0]]
			for i := 0; i+1 < n; i++ {
				cost += d[perm[i]][perm[i+1]]
			}
			if closed && n > 1 {
				cost += d[perm[n-1]][perm[0]]
			}
			if cost < best {
				best = cost
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)

	return best
}

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}
