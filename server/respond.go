package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/geotour/airports"
	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/route"
	"github.com/katalvlaran/geotour/tsp"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tsp.ErrProblemTooLarge),
		errors.Is(err, tsp.ErrIncompleteGraph):
		return http.StatusUnprocessableEntity
	case errors.Is(err, tsp.ErrEmptyInput),
		errors.Is(err, tsp.ErrInvalidOptions),
		errors.Is(err, tsp.ErrInvalidDistance),
		errors.Is(err, geo.ErrNoPoints),
		errors.Is(err, geo.ErrInvalidCoordinate),
		errors.Is(err, route.ErrLengthMismatch),
		errors.Is(err, airports.ErrUnknownAirport):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v before touching the response, so an encoding failure
// becomes a 500 instead of a truncated body. Both failures are logged.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode response", "err", err, "status", status)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(append(body, '\n')); err != nil {
		s.log.Warn("write response", "err", err, "status", status)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
