package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/katalvlaran/geotour/airports"
	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/route"
	"github.com/katalvlaran/geotour/tsp"
)

const formatGeoJSON = "geojson"

// tourParams are the solver fields shared by both tour requests. Absent
// fields fall back to the server defaults; a negative start frees it.
type tourParams struct {
	Mode  *tsp.Mode `json:"mode"`
	Start *int      `json:"start"`
}

func (p tourParams) options(defaults tsp.Options) tsp.Options {
	o := defaults
	if p.Mode != nil {
		o.Mode = *p.Mode
	}
	if p.Start != nil {
		o.FixedStart = *p.Start >= 0
		o.Start = 0
		if o.FixedStart {
			o.Start = *p.Start
		}
	}

	return o
}

type tourRequest struct {
	Points []geo.Point `json:"points"`
	tourParams
}

type airportTourRequest struct {
	IDs []string `json:"ids"`
	tourParams
}

type airportsResponse struct {
	Count    int                `json:"count"`
	Airports []airports.Airport `json:"airports"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTour(w http.ResponseWriter, r *http.Request) {
	var req tourRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := geo.ValidateAll(req.Points); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	tour, err := route.Plan(req.Points, req.options(s.defaults))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.log.Debug("tour solved", "points", len(req.Points), "mode", tour.Mode, "cost", tour.Cost)

	if wantsGeoJSON(r) {
		s.writeJSON(w, http.StatusOK, route.PointsFeatureCollection(tour))
		return
	}
	s.writeJSON(w, http.StatusOK, tour)
}

func (s *Server) handleAirports(w http.ResponseWriter, r *http.Request) {
	list := s.airports
	if raw := r.URL.Query().Get("ids"); raw != "" {
		var err error
		list, err = airports.Select(s.airports, strings.Split(raw, ","))
		if err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}
	}
	if list == nil {
		list = []airports.Airport{}
	}

	s.writeJSON(w, http.StatusOK, airportsResponse{Count: len(list), Airports: list})
}

func (s *Server) handleAirportTour(w http.ResponseWriter, r *http.Request) {
	var req airportTourRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	chosen, err := airports.Select(s.airports, req.IDs)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	tour, err := route.PlanPlaces(airports.Places(chosen), req.options(s.defaults))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.log.Debug("airport tour solved", "airports", len(chosen), "mode", tour.Mode, "cost", tour.Cost)

	if wantsGeoJSON(r) {
		s.writeJSON(w, http.StatusOK, route.FeatureCollection(tour))
		return
	}
	s.writeJSON(w, http.StatusOK, tour)
}

func wantsGeoJSON(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), formatGeoJSON)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}
