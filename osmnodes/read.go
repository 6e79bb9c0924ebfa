package osmnodes

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"

	"github.com/katalvlaran/geotour/geo"
)

// Filter reports whether a node becomes a place.
type Filter func(n *osm.Node) bool

// Named accepts nodes with a non-empty name tag.
func Named(n *osm.Node) bool {
	return n.Tags.Find("name") != ""
}

// TagFilter accepts named nodes whose tag key equals value. An empty value
// accepts any value of key.
func TagFilter(key, value string) Filter {
	return func(n *osm.Node) bool {
		if !Named(n) || !n.Tags.HasTag(key) {
			return false
		}
		return value == "" || n.Tags.Find(key) == value
	}
}

// Read scans an OSM XML stream and returns the accepted nodes in stream
// order. A nil filter means Named.
func Read(ctx context.Context, r io.Reader, filter Filter) ([]geo.Place, error) {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	return collect(scanner, filter)
}

// ReadPBF is Read for OSM PBF extracts.
func ReadPBF(ctx context.Context, r io.Reader, filter Filter) ([]geo.Place, error) {
	scanner := osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
	scanner.SkipWays = true
	scanner.SkipRelations = true
	defer scanner.Close()

	return collect(scanner, filter)
}

func collect(scanner osm.Scanner, filter Filter) ([]geo.Place, error) {
	if filter == nil {
		filter = Named
	}

	var out []geo.Place
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok || !filter(node) {
			continue
		}
		out = append(out, geo.Place{
			ID:    fmt.Sprintf("node/%d", node.ID),
			Label: node.Tags.Find("name"),
			Point: geo.Point{Lat: node.Lat, Lon: node.Lon},
		})
	}
	if err := scanner.Err(); err != nil {
		return out, fmt.Errorf("osmnodes: scan: %w", err)
	}

	return out, nil
}
