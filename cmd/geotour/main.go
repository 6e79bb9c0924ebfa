// Command geotour solves exact shortest tours over geographic points.
//
// Usage:
//
//	geotour [-config file] solve   (-ids JFK,LAX,... | -points "lat,lon;..." | -osm file [-tag key=value])
//	                               [-mode path|cycle] [-start n] [-geojson out.json]
//	geotour [-config file] refresh [-url U] [-out F]
//	geotour [-config file] serve   [-addr :8080]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/geotour/config"
	"github.com/katalvlaran/geotour/logging"
)

const usage = `usage: geotour [-config file] <command> [flags]

commands:
  solve    solve a tour over airports, coordinates or OSM nodes
  refresh  download the airport dataset
  serve    run the HTTP API
`

// app carries what every command needs.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	stdout io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("geotour", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	cfgPath := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	a := &app{cfg: cfg, log: log, stdout: stdout}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "solve":
		err = a.solve(ctx, rest, stderr)
	case "refresh":
		err = a.refresh(ctx, rest, stderr)
	case "serve":
		err = a.serve(ctx, rest, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		fs.Usage()
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp), errors.Is(err, errUsage):
		return 2
	default:
		log.Error(cmd+" failed", "err", err)
		return 1
	}
}
