package route

import (
	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/tsp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection renders a tour as GeoJSON: one LineString through the
// points in travel order (closed back to the start for cycles) followed by
// one Point feature per stop with "step", "id" and "label" properties.
//
// Travel order is the reverse of Tour.Points, so step 0 is the first visited
// point.
func FeatureCollection(t PlaceTour) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	n := len(t.Places)
	if n == 0 {
		return fc
	}

	line := make(orb.LineString, 0, n+1)
	for k := n - 1; k >= 0; k-- {
		line = append(line, t.Places[k].Orb())
	}
	if t.Mode == tsp.Cycle && n > 1 {
		line = append(line, line[0])
	}

	lf := geojson.NewFeature(line)
	lf.Properties["cost_km"] = t.Cost
	lf.Properties["mode"] = t.Mode.String()
	fc.Append(lf)

	for step, k := 0, n-1; k >= 0; step, k = step+1, k-1 {
		pf := geojson.NewFeature(t.Places[k].Orb())
		pf.Properties["step"] = step
		if t.Places[k].ID != "" {
			pf.Properties["id"] = t.Places[k].ID
		}
		if t.Places[k].Label != "" {
			pf.Properties["label"] = t.Places[k].Label
		}
		fc.Append(pf)
	}

	return fc
}

// PointsFeatureCollection is FeatureCollection for an unnamed Tour.
func PointsFeatureCollection(t Tour) *geojson.FeatureCollection {
	places := make([]geo.Place, len(t.Points))
	for i, p := range t.Points {
		places[i] = geo.Place{Point: p}
	}

	return FeatureCollection(PlaceTour{Places: places, Order: t.Order, Cost: t.Cost, Mode: t.Mode})
}
