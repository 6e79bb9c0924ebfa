// Package geo holds the geographic primitives of geotour: latitude/longitude
// points, named places, and the great-circle Distance Model.
//
// Distances are computed with the haversine formula on a sphere of radius
// EarthRadiusKm (6371.0 km). DistanceMatrix evaluates every unordered pair
// once and mirrors the value, so the result is exactly symmetric with an
// exact zero diagonal.
//
// Coordinates are degrees. DistanceMatrix does not range-check them; outer
// surfaces (CLI, HTTP, dataset loaders) call Point.Validate first.
package geo
