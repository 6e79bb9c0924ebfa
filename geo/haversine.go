package geo

import (
	"errors"
	"math"

	"github.com/katalvlaran/geotour/matrix"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// ErrNoPoints is returned by DistanceMatrix for an empty point set.
var ErrNoPoints = errors.New("geo: no points")

const degToRad = math.Pi / 180.0

// Haversine returns the great-circle distance between a and b in kilometres.
//
// The intermediate term a is clamped to [0, 1]: rounding can push it just
// past 1 for antipodal points, which would make sqrt(1-a) NaN.
//
// Complexity: O(1).
func Haversine(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * degToRad
	dLon := (b.Lon - a.Lon) * degToRad
	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	h = clamp01(h)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// clamp01 limits x to [0, 1]; NaN passes through unchanged.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}

// DistanceMatrix builds the symmetric N×N haversine distance matrix of points.
//
// Implementation:
//   - Stage 1: reject N == 0 (ErrNoPoints).
//   - Stage 2: allocate an N×N zero matrix (diagonal stays 0).
//   - Stage 3: for i<j compute Haversine once, write it to [i][j] and [j][i].
//
// Non-finite coordinates surface as matrix.ErrNaNInf from the matrix numeric
// policy; range is not checked.
//
// Complexity: O(N²) time and space.
func DistanceMatrix(points []Point) (*matrix.Dense, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Haversine(points[i], points[j])
			if err = dist.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = dist.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return dist, nil
}
