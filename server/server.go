// server/server.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package server exposes the planning engine over a small HTTP API for
// front ends that would rather not shell out to the CLI.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mmp/preflight/aviation"
	"github.com/mmp/preflight/log"
	"github.com/mmp/preflight/math"
	"github.com/mmp/preflight/plan"
	"github.com/mmp/preflight/util"
	"github.com/mmp/preflight/wx"
)

// GridSource supplies wind grids for plan requests; *wx.Fetcher
// implements it, and tests substitute canned grids.
type GridSource func(r *http.Request, levels []string, e *util.ErrorLogger) (*wx.WindGrid, error)

type Server struct {
	grids GridSource
	lg    *log.Logger
}

// New constructs the HTTP router wired to the planning engine. The grid
// source may be nil, in which case /plan requests are computed with zero
// wind and annotated accordingly.
func New(grids GridSource, lg *log.Logger) http.Handler {
	s := &Server{grids: grids, lg: lg}

	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/aircraft", s.handleAircraft)
	r.Get("/aircraft/{id}", s.handleAircraftProfile)
	r.Post("/plan", s.handlePlan)

	return r
}

// FetcherSource adapts a wx.Fetcher into a GridSource.
func FetcherSource(f *wx.Fetcher) GridSource {
	return func(r *http.Request, levels []string, e *util.ErrorLogger) (*wx.WindGrid, error) {
		return f.FetchGrid(r.Context(), levels, e)
	}
}

func (s *Server) handleAircraft(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	var aircraft []entry
	for _, id := range aviation.DB.AircraftIDs() {
		p, _ := aviation.DB.Profile(id)
		aircraft = append(aircraft, entry{ID: id, Name: p.Name})
	}
	writeJSON(w, aircraft)
}

func (s *Server) handleAircraftProfile(w http.ResponseWriter, r *http.Request) {
	p, err := aviation.DB.Profile(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, p)
}

// PlanRequest is the /plan request body.
type PlanRequest struct {
	Aircraft       string  `json:"aircraft"`
	StartWeight    float32 `json:"startWeight"`    // lb; 0 -> max gross
	ReserveMinutes float32 `json:"reserveMinutes"` // 0 -> profile reserve
	CruiseAltitude float32 `json:"cruiseAltitude"` // 0 -> hemispherical selection
	MinSafeAlt     float32 `json:"minSafeAltitude"`
	ZeroWind       bool    `json:"zeroWind"`

	Waypoints []PlanWaypoint `json:"waypoints"`
	Alternate *PlanWaypoint  `json:"alternate,omitempty"`
}

type PlanWaypoint struct {
	Ident     string  `json:"ident"`
	Latitude  float32 `json:"lat"`
	Longitude float32 `json:"lon"`
	Elevation float32 `json:"elevation"`
}

func (pw PlanWaypoint) waypoint() plan.Waypoint {
	return plan.Waypoint{
		Ident:     pw.Ident,
		Location:  math.Point2LL{pw.Longitude, pw.Latitude},
		Elevation: pw.Elevation,
	}
}

// PlanResponse wraps the computed plan with the inputs the engine chose
// on the caller's behalf.
type PlanResponse struct {
	Aircraft       string         `json:"aircraft"`
	Course         float32        `json:"course"`
	CruiseAltitude float32        `json:"cruiseAltitude"`
	FuelUnit       string         `json:"fuelUnit"`
	Plan           *plan.FuelPlan `json:"plan"`
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	if len(req.Waypoints) < 2 {
		writeJSONError(w, http.StatusBadRequest, "at least two waypoints are required")
		return
	}

	prof, err := aviation.DB.Profile(req.Aircraft)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "unknown aircraft "+req.Aircraft)
		return
	}

	first, last := req.Waypoints[0].waypoint(), req.Waypoints[len(req.Waypoints)-1].waypoint()
	course := math.Heading2LL(first.Location, last.Location, math.NMPerLongitudeAt(first.Location))

	minSafe := req.MinSafeAlt
	if minSafe == 0 {
		// Higher terminal elevation plus standard terrain clearance.
		minSafe = max(first.Elevation, last.Elevation) + 1000
	}

	alt := req.CruiseAltitude
	if alt == 0 {
		if alt, err = plan.SelectCruiseAltitude(course, minSafe, prof.Ceiling,
			plan.DefaultHemisphericConfig()); err != nil {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	var legs []plan.RouteLeg
	for i := range req.Waypoints[:len(req.Waypoints)-1] {
		legs = append(legs, plan.MakeLeg(req.Waypoints[i].waypoint(), req.Waypoints[i+1].waypoint(), alt))
	}
	var alternate *plan.RouteLeg
	if req.Alternate != nil {
		l := plan.MakeLeg(last, req.Alternate.waypoint(), alt)
		alternate = &l
	}

	p := &plan.Planner{
		Profile:        prof,
		ReserveMinutes: req.ReserveMinutes,
		Lg:             s.lg,
	}
	if !req.ZeroWind && s.grids != nil {
		var e util.ErrorLogger
		grid, err := s.grids(r, []string{wx.PickLevel(alt)}, &e)
		if err != nil {
			s.lg.Warnf("winds aloft fetch failed, planning with zero wind: %v", err)
		} else {
			p.Grid = grid
		}
		if e.HaveErrors() {
			s.lg.Warnf("FD decode problems: %s", e.String())
		}
	}

	startWeight := util.Select(req.StartWeight > 0, req.StartWeight, prof.MaxGrossWeight)
	fp, err := p.Plan(legs, startWeight, alternate)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, plan.ErrInvalidLeg) || errors.Is(err, aviation.ErrInvalidTable) {
			status = http.StatusUnprocessableEntity
		}
		writeJSONError(w, status, err.Error())
		return
	}
	if p.Grid == nil && !req.ZeroWind {
		fp.Warnings = append(fp.Warnings, "no winds aloft data; plan assumes zero wind")
	}

	writeJSON(w, PlanResponse{
		Aircraft:       prof.ID,
		Course:         course,
		CruiseAltitude: alt,
		FuelUnit:       string(prof.FuelUnit),
		Plan:           fp,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
