// Package route is the calling surface of geotour: it chains the Distance
// Model (geo.DistanceMatrix) and the exact solver (tsp.Solve) and hands the
// caller the points in visiting order.
//
// BuildPath is the buffer-oriented contract: it overwrites the caller's
// latitude/longitude slices in place and returns the cost. Plan and
// PlanPlaces are the non-destructive equivalents, and FeatureCollection
// renders a tour as GeoJSON for map display.
//
// Ordering: every function here uses tsp.Result.Path as-is, so position 0
// holds the last visited point and the final position the first one.
package route
