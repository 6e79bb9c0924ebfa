package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/geotour/airports"
	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/osmnodes"
	"github.com/katalvlaran/geotour/route"
	"github.com/katalvlaran/geotour/tsp"
)

var errUsage = errors.New("usage error")

func (a *app) solve(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		ids     = fs.String("ids", "", "comma-separated airport ids from the data file")
		points  = fs.String("points", "", `coordinates as "lat,lon;lat,lon;..."`)
		osmFile = fs.String("osm", "", "OSM extract (.osm or .pbf) to take named nodes from")
		tag     = fs.String("tag", "", "with -osm: keep nodes with this key or key=value tag")
		mode    = fs.String("mode", a.cfg.Solver.Mode.String(), "path or cycle")
		start   = fs.Int("start", a.cfg.Solver.Start, "index of the first stop, -1 for free")
		geoOut  = fs.String("geojson", "", "also write the tour as GeoJSON to this file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := a.cfg.Solver.Options()
	m, err := tsp.ParseMode(*mode)
	if err != nil {
		return err
	}
	opts.Mode = m
	opts.FixedStart = *start >= 0
	opts.Start = 0
	if opts.FixedStart {
		opts.Start = *start
	}

	places, err := a.loadPlaces(ctx, *ids, *points, *osmFile, *tag)
	if err != nil {
		return err
	}
	a.log.Debug("solving", "stops", len(places), "mode", opts.Mode)

	tour, err := route.PlanPlaces(places, opts)
	if err != nil {
		return err
	}
	printTour(a.stdout, tour)

	if *geoOut != "" {
		b, err := json.MarshalIndent(route.FeatureCollection(tour), "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(*geoOut, b, 0o644); err != nil {
			return fmt.Errorf("write geojson: %w", err)
		}
		a.log.Info("geojson written", "path", *geoOut)
	}

	return nil
}

// loadPlaces resolves exactly one of the three point sources.
func (a *app) loadPlaces(ctx context.Context, ids, points, osmFile, tag string) ([]geo.Place, error) {
	set := 0
	for _, s := range []string{ids, points, osmFile} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: give exactly one of -ids, -points, -osm", errUsage)
	}

	switch {
	case ids != "":
		all, err := airports.Load(a.cfg.Airports.DataFile)
		if err != nil {
			return nil, fmt.Errorf("%w (run geotour refresh first)", err)
		}
		chosen, err := airports.Select(all, strings.Split(ids, ","))
		if err != nil {
			return nil, err
		}
		return airports.Places(chosen), nil

	case points != "":
		return parsePoints(points)

	default:
		return readOSM(ctx, osmFile, tag)
	}
}

// parsePoints reads "lat,lon;lat,lon;..." and labels points by input index.
func parsePoints(s string) ([]geo.Place, error) {
	var out []geo.Place
	for i, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		latStr, lonStr, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("%w: point %q is not lat,lon", errUsage, pair)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: point %q: %v", errUsage, pair, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: point %q: %v", errUsage, pair, err)
		}
		p := geo.Point{Lat: lat, Lon: lon}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out = append(out, geo.Place{ID: strconv.Itoa(i), Label: p.String(), Point: p})
	}

	return out, nil
}

func readOSM(ctx context.Context, path, tag string) ([]geo.Place, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var filter osmnodes.Filter
	if tag != "" {
		key, value, _ := strings.Cut(tag, "=")
		filter = osmnodes.TagFilter(key, value)
	}
	if strings.EqualFold(filepath.Ext(path), ".pbf") {
		return osmnodes.ReadPBF(ctx, f, filter)
	}

	return osmnodes.Read(ctx, f, filter)
}

// printTour lists the stops in travel order.
func printTour(w io.Writer, t route.PlaceTour) {
	n := len(t.Places)
	for step, k := 1, n-1; k >= 0; step, k = step+1, k-1 {
		p := t.Places[k]
		fmt.Fprintf(w, "%3d. %s (%.4f, %.4f)\n", step, name(p), p.Lat, p.Lon)
	}
	if t.Mode == tsp.Cycle && n > 1 {
		fmt.Fprintf(w, "     back to %s\n", name(t.Places[n-1]))
	}
	fmt.Fprintf(w, "total: %.3f km (%s)\n", t.Cost, t.Mode)
}

func name(p geo.Place) string {
	if p.Label != "" {
		return p.Label
	}

	return p.ID
}
