package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/tsp"
)

// ErrLengthMismatch is returned by BuildPath when the coordinate slices differ in length.
var ErrLengthMismatch = errors.New("route: latitude and longitude lengths differ")

// Tour is a solved visiting order over a point set.
type Tour struct {
	// Points holds the input points reordered: Points[k] = input[Order[k]].
	Points []geo.Point `json:"points"`
	// Order is tsp.Result.Path: Order[0] is the last visited point.
	Order []int `json:"order"`
	// Cost is the total distance in kilometres.
	Cost float64 `json:"cost"`
	// Mode tells whether Cost includes the closing edge.
	Mode tsp.Mode `json:"mode"`
}

// PlaceTour is a Tour over named places.
type PlaceTour struct {
	Places []geo.Place `json:"places"`
	Order  []int       `json:"order"`
	Cost   float64     `json:"cost"`
	Mode   tsp.Mode    `json:"mode"`
}

// Tour drops the names.
func (t PlaceTour) Tour() Tour {
	return Tour{Points: geo.Points(t.Places), Order: t.Order, Cost: t.Cost, Mode: t.Mode}
}

// solve runs the Distance Model then the exact solver.
func solve(points []geo.Point, opts tsp.Options) (tsp.Result, error) {
	if len(points) == 0 {
		return tsp.Result{}, tsp.ErrEmptyInput
	}
	// Check the ceiling before the O(n²) matrix; Solve checks it again before the 2ⁿ table.
	if limit := opts.Limit(); len(points) > limit {
		return tsp.Result{}, fmt.Errorf("%w: %d points, limit %d", tsp.ErrProblemTooLarge, len(points), limit)
	}
	dist, err := geo.DistanceMatrix(points)
	if err != nil {
		return tsp.Result{}, err
	}

	return tsp.Solve(dist, opts)
}

// Plan solves points and returns them in visiting order without touching the input.
func Plan(points []geo.Point, opts tsp.Options) (Tour, error) {
	res, err := solve(points, opts)
	if err != nil {
		return Tour{}, err
	}
	ordered := make([]geo.Point, len(res.Path))
	for k, idx := range res.Path {
		ordered[k] = points[idx]
	}

	return Tour{Points: ordered, Order: res.Path, Cost: res.Cost, Mode: res.Mode}, nil
}

// PlanPlaces is Plan over named places.
func PlanPlaces(places []geo.Place, opts tsp.Options) (PlaceTour, error) {
	res, err := solve(geo.Points(places), opts)
	if err != nil {
		return PlaceTour{}, err
	}
	ordered := make([]geo.Place, len(res.Path))
	for k, idx := range res.Path {
		ordered[k] = places[idx]
	}

	return PlaceTour{Places: ordered, Order: res.Path, Cost: res.Cost, Mode: res.Mode}, nil
}

// BuildPath solves the points given as parallel coordinate slices and
// overwrites lats and lons so that position k holds the point at step k of
// the reconstructed order. On error the slices are left untouched.
//
// Errors: ErrLengthMismatch, tsp.ErrEmptyInput, tsp.ErrProblemTooLarge and
// the other tsp / matrix sentinels.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func BuildPath(lats, lons []float64, opts tsp.Options) (float64, error) {
	if len(lats) != len(lons) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(lats), len(lons))
	}
	points := make([]geo.Point, len(lats))
	for i := range lats {
		points[i] = geo.Point{Lat: lats[i], Lon: lons[i]}
	}

	res, err := solve(points, opts)
	if err != nil {
		return 0, err
	}
	for k, idx := range res.Path {
		lats[k] = points[idx].Lat
		lons[k] = points[idx].Lon
	}

	return res.Cost, nil
}
