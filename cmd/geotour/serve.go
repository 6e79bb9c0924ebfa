package main

import (
	"context"
	"flag"
	"io"

	"github.com/katalvlaran/geotour/airports"
	"github.com/katalvlaran/geotour/server"
)

func (a *app) serve(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", a.cfg.Server.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := airports.Load(a.cfg.Airports.DataFile)
	if err != nil {
		a.log.Warn("serving without airport dataset", "err", err)
		list = nil
	}

	return server.New(list, a.cfg.Solver.Options(), a.log).ListenAndServe(ctx, *addr)
}
