package route_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/route"
	"github.com/katalvlaran/geotour/tsp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestFeatureCollection_Cycle(t *testing.T) {
	places := []geo.Place{
		{ID: "A", Label: "Alpha", Point: geo.Point{Lat: 0, Lon: 0}},
		{ID: "B", Label: "Bravo", Point: geo.Point{Lat: 0, Lon: 1}},
		{ID: "C", Label: "Charlie", Point: geo.Point{Lat: 1, Lon: 1}},
	}
	tour, err := route.PlanPlaces(places, tsp.Options{Mode: tsp.Cycle})
	require.NoError(t, err)

	fc := route.FeatureCollection(tour)
	require.Len(t, fc.Features, 4)

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	require.Len(t, line, 4)
	require.Equal(t, line[0], line[3]) // closed
	require.Equal(t, places[0].Orb(), line[0])
	require.Equal(t, "cycle", fc.Features[0].Properties["mode"])

	first := fc.Features[1]
	require.Equal(t, 0, first.Properties["step"])
	require.Equal(t, "A", first.Properties["id"])
	require.Equal(t, "Alpha", first.Properties["label"])

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"type":"FeatureCollection"`)
	require.Contains(t, string(raw), `"LineString"`)
}

func TestPointsFeatureCollection_Path(t *testing.T) {
	tour, err := route.Plan([]geo.Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}}, tsp.Options{})
	require.NoError(t, err)

	fc := route.PointsFeatureCollection(tour)
	require.Len(t, fc.Features, 3)
	line := fc.Features[0].Geometry.(orb.LineString)
	require.Len(t, line, 2) // open path is not closed
	_, hasID := fc.Features[1].Properties["id"]
	require.False(t, hasID)

	require.Empty(t, route.FeatureCollection(route.PlaceTour{}).Features)
}
