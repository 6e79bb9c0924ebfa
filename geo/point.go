package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ErrInvalidCoordinate is returned by Point.Validate for non-finite or
// out-of-range latitude/longitude values.
var ErrInvalidCoordinate = errors.New("geo: invalid coordinate")

// Point is a geographic position in degrees.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Validate checks Lat ∈ [-90, 90] and Lon ∈ [-180, 180], both finite.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return fmt.Errorf("%w: (%v, %v) is not finite", ErrInvalidCoordinate, p.Lat, p.Lon)
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidCoordinate, p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidCoordinate, p.Lon)
	}

	return nil
}

// Orb converts p to an orb.Point, which is ordered (lon, lat).
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// FromOrb converts an orb.Point (lon, lat) to a Point.
func FromOrb(o orb.Point) Point {
	return Point{Lat: o.Lat(), Lon: o.Lon()}
}

// String formats the point as "lat,lon".
func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.Lat, p.Lon)
}

// Place is a Point with a stable identifier and a human-readable label,
// e.g. an airport ("JFK", "New York (United States) [JFK]").
type Place struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Point
}

// Points extracts the coordinates of places, preserving order.
func Points(places []Place) []Point {
	out := make([]Point, len(places))
	for i := range places {
		out[i] = places[i].Point
	}

	return out
}

// ValidateAll runs Validate on every point and reports the first failing index.
func ValidateAll(points []Point) error {
	for i, p := range points {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}

	return nil
}
