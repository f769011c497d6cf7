// plan/plan.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package plan implements the route computation engine: hemispherical
// cruise altitude selection, wind-corrected leg computation, and fuel
// planning. Everything here is pure computation over immutable inputs;
// fetching and decoding forecasts is the wx package's business and
// happens before any of this runs.
package plan

import (
	"fmt"

	"github.com/mmp/preflight/math"
	"github.com/mmp/preflight/wx"
)

// Waypoint is one fix on a route.
type Waypoint struct {
	Ident     string
	Location  math.Point2LL
	Elevation float32 // feet MSL; used for climb/descent phase planning
}

// RouteLeg is one leg of a planned route. Legs are built by the caller
// (generally via MakeLeg) and consumed read-only by the engine.
type RouteLeg struct {
	From, To Waypoint
	Course   float32 // degrees true
	Distance float32 // nm
	Altitude float32 // cruise altitude, feet MSL
}

// MakeLeg builds a RouteLeg between two waypoints, computing the
// great-circle course and distance from their locations.
func MakeLeg(from, to Waypoint, alt float32) RouteLeg {
	return RouteLeg{
		From:     from,
		To:       to,
		Course:   math.Heading2LL(from.Location, to.Location, math.NMPerLongitudeAt(from.Location)),
		Distance: math.NMDistance2LL(from.Location, to.Location),
		Altitude: alt,
	}
}

func (l RouteLeg) MidPoint() math.Point2LL {
	return math.Mid2LL(l.From.Location, l.To.Location)
}

func (l RouteLeg) String() string {
	return fmt.Sprintf("%s-%s %03.0f/%.0fnm at %.0f'", l.From.Ident, l.To.Ident,
		l.Course, l.Distance, l.Altitude)
}

// LegResult is the computed outcome for one leg.
type LegResult struct {
	Leg  RouteLeg
	Wind wx.Wind

	TAS        float32 // knots, from the performance table
	GS         float32 // knots
	WCA        float32 // wind correction angle, degrees (+ right)
	Heading    float32 // degrees true
	Hours      float32 // time en route
	Fuel       float32 // in the profile's fuel unit
	FuelFlow   float32 // per hour
	Clamped    bool    // a table or wind lookup fell outside sampled data
	Infeasible bool    // wind beat the airplane; computed with zero wind
}

// PhaseResult holds the planning figures for a taxi, climb, or descent
// phase.
type PhaseResult struct {
	Hours    float32
	Distance float32 // nm covered during the phase
	Fuel     float32
}

// FuelPlan is the complete fuel plan for a route. All fuel quantities
// are in the aircraft profile's fuel unit.
type FuelPlan struct {
	Legs      []LegResult
	Alternate *LegResult

	Taxi    PhaseResult
	Climb   PhaseResult
	Descent PhaseResult

	TripFuel    float32 // climb + cruise legs + descent
	Contingency float32
	Reserve     float32
	BlockFuel   float32 // everything, including taxi

	TotalHours float32 // climb + cruise + descent; taxi excluded

	// Endurance and still-air range with full usable fuel, less taxi and
	// reserve, at the planned cruise fuel flow.
	EnduranceHours float32
	MaxRange       float32

	FuelOK  bool    // block fuel fits in usable capacity
	Deficit float32 // amount over capacity when !FuelOK

	Warnings []string
}
