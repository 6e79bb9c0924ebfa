// Package geotour finds the exact shortest tour through a small set of
// geographic points.
//
// Points are latitude/longitude pairs; the distance between two points is
// the great-circle (haversine) distance on a sphere of radius 6371 km. The
// tour is solved exactly with the Held–Karp dynamic program, so the point
// count is kept small (20 by default, never more than 30).
//
// Packages:
//
//	matrix/      dense float64 matrix, numeric policy, validators
//	geo/         Point, Place, haversine distance, distance matrix
//	tsp/         Held–Karp solver (open path or closed cycle), path utilities
//	route/       points in, ordered points out; in-place BuildPath; GeoJSON
//	airports/    airportgap.com dataset: paginated client, JSON store, selection
//	osmnodes/    named OpenStreetMap nodes as tour stops (XML and PBF)
//	config/      YAML configuration
//	logging/     slog logger construction
//	server/      HTTP API
//	cmd/geotour  command-line entry point
//
// Quick example:
//
//	points := []geo.Point{{Lat: 40.64, Lon: -73.78}, {Lat: 33.94, Lon: -118.41}, {Lat: 41.98, Lon: -87.90}}
//	tour, err := route.Plan(points, tsp.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%.1f km via %v\n", tour.Cost, tour.Order)
//
// Result order: tsp.Result.Path (and Tour.Order) lists the last visited
// point first; Result.Forward gives the travel order.
package geotour
