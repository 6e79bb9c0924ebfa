package main

import (
	"context"
	"flag"
	"io"
	"net/http"

	"github.com/katalvlaran/geotour/airports"
)

func (a *app) refresh(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("refresh", flag.ContinueOnError)
	fs.SetOutput(stderr)
	url := fs.String("url", a.cfg.Airports.APIURL, "first page of the airport API")
	out := fs.String("out", a.cfg.Airports.DataFile, "dataset file to write")
	if err := fs.Parse(args); err != nil {
		return err
	}

	n, err := airports.Refresh(ctx, a.client(), *url, *out)
	if n > 0 {
		a.log.Info("refresh done", "airports", n, "path", *out)
	}

	return err
}

func (a *app) client() *airports.Client {
	c := airports.NewClient(&http.Client{Timeout: a.cfg.Airports.Timeout}, a.log)
	c.RetryWait = a.cfg.Airports.RetryWait
	c.MaxRetries = a.cfg.Airports.MaxRetries

	return c
}
