// Package config loads the geotour YAML configuration.
//
// Every field has a default, so an absent file section (or no file at all)
// leaves the built-in values in place:
//
//	solver:
//	  max-points: 20
//	  mode: path        # path | cycle
//	  start: -1         # -1 = free start
//	airports:
//	  api-url: https://airportgap.com/api/airports
//	  data-file: data/airports.json
//	  retry-wait: 60s
//	  max-retries: 5
//	  timeout: 30s
//	server:
//	  addr: ":8080"
//	log:
//	  level: info       # debug | info | warn | error
//	  format: text      # text | json
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geotour/airports"
	"github.com/katalvlaran/geotour/logging"
	"github.com/katalvlaran/geotour/tsp"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full application configuration.
type Config struct {
	Solver   Solver   `yaml:"solver"`
	Airports Airports `yaml:"airports"`
	Server   Server   `yaml:"server"`
	Log      Log      `yaml:"log"`
}

// Solver holds the default tsp.Options.
type Solver struct {
	MaxPoints int      `yaml:"max-points"`
	Mode      tsp.Mode `yaml:"mode"`
	Start     int      `yaml:"start"`
}

// Airports configures the dataset client and store.
type Airports struct {
	APIURL     string        `yaml:"api-url"`
	DataFile   string        `yaml:"data-file"`
	RetryWait  time.Duration `yaml:"retry-wait"`
	MaxRetries int           `yaml:"max-retries"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `yaml:"addr"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: Solver{
			MaxPoints: tsp.DefaultMaxPoints,
			Mode:      tsp.Path,
			Start:     -1,
		},
		Airports: Airports{
			APIURL:     airports.DefaultURL,
			DataFile:   "data/airports.json",
			RetryWait:  airports.DefaultRetryWait,
			MaxRetries: airports.DefaultMaxRetries,
			Timeout:    airports.DefaultTimeout,
		},
		Server: Server{Addr: ":8080"},
		Log:    Log{Level: "info", Format: logging.FormatText},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects values no component can run with.
func (c Config) Validate() error {
	if err := c.Solver.Options().Validate(); err != nil {
		return fmt.Errorf("%w: solver: %w", ErrInvalid, err)
	}
	if c.Airports.APIURL == "" {
		return fmt.Errorf("%w: airports.api-url is empty", ErrInvalid)
	}
	if c.Airports.DataFile == "" {
		return fmt.Errorf("%w: airports.data-file is empty", ErrInvalid)
	}
	if c.Airports.RetryWait < 0 || c.Airports.Timeout < 0 {
		return fmt.Errorf("%w: airports durations must not be negative", ErrInvalid)
	}
	if c.Airports.MaxRetries < 0 {
		return fmt.Errorf("%w: airports.max-retries %d", ErrInvalid, c.Airports.MaxRetries)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	}
	if _, err := logging.New(c.Log.Level, c.Log.Format, nil); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalid, err)
	}

	return nil
}

// Options converts the solver section to tsp.Options. A negative Start
// leaves the start free.
func (s Solver) Options() tsp.Options {
	o := tsp.Options{Mode: s.Mode, MaxPoints: s.MaxPoints}
	if s.Start >= 0 {
		o.FixedStart = true
		o.Start = s.Start
	}

	return o
}
