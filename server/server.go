// Package server exposes the tour solver and the airport dataset over HTTP.
//
// Routes:
//
//	GET  /healthz
//	POST /v1/tour              {"points":[{"lat":..,"lon":..}],"mode":"path","start":-1}
//	GET  /v1/airports?ids=A,B
//	POST /v1/airports/tour     {"ids":["A","B"],"mode":"cycle"}
//
// Tour endpoints accept ?format=geojson. Each request runs its own solve, so
// handlers share nothing mutable.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/geotour/airports"
	"github.com/katalvlaran/geotour/tsp"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Server holds the read-only state shared by handlers.
type Server struct {
	airports []airports.Airport
	defaults tsp.Options
	log      *slog.Logger
	router   *mux.Router
}

// New builds a Server over the airport dataset (may be empty) using defaults
// for fields a request leaves out. A nil logger falls back to slog.Default().
func New(list []airports.Airport, defaults tsp.Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		airports: list,
		defaults: defaults,
		log:      logger,
		router:   mux.NewRouter(),
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	s.router.HandleFunc("/v1/tour", s.handleTour).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/airports", s.handleAirports).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/airports/tour", s.handleAirportTour).Methods(http.MethodPost)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusNotFound, errors.New("not found"))
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	})
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr, "airports", len(s.airports))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
