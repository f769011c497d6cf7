// plan/fuel.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plan

import (
	"errors"
	"fmt"

	"github.com/mmp/preflight/aviation"
	"github.com/mmp/preflight/log"
	"github.com/mmp/preflight/wx"
)

// Planner computes fuel plans for one aircraft over one wind forecast.
// It holds no per-plan state; one Planner may be used for any number of
// Plan calls.
type Planner struct {
	Profile *aviation.AircraftProfile

	// Grid may be nil, in which case every leg is planned with zero
	// wind. That choice is the caller's to make, typically after a
	// failed forecast fetch.
	Grid *wx.WindGrid

	// ReserveMinutes sizes the reserve from the fuel flow at the final
	// cruise altitude; 0 uses the profile's fixed reserve quantity.
	ReserveMinutes float32

	Lg *log.Logger
}

// Plan computes the fuel plan for the ordered legs, starting at the
// given gross weight. Weight decreases by the fuel burned after each leg
// so later legs see lighter performance where the table has a weight
// axis. The optional alternate leg is computed like any other and its
// fuel added to the block total.
//
// Data-integrity failures (bad table, no wind data for a request) are
// returned as errors. A leg the wind makes unflyable does not abort the
// plan: the leg is computed with zero wind, marked Infeasible, and a
// warning added, so the pilot sees the whole picture and the problem.
// An over-capacity plan is likewise returned intact with FuelOK false
// and the deficit annotated.
func (p *Planner) Plan(legs []RouteLeg, startWeight float32, alternate *RouteLeg) (*FuelPlan, error) {
	if len(legs) == 0 {
		return nil, ErrInvalidLeg
	}

	prof := p.Profile
	fp := &FuelPlan{
		Taxi: PhaseResult{Fuel: prof.TaxiFuel},
	}
	weight := startWeight
	weight -= prof.FuelWeight(prof.TaxiFuel)

	if startWeight > prof.MaxGrossWeight {
		fp.warnf("start weight %.0f lb exceeds max gross %.0f lb", startWeight, prof.MaxGrossWeight)
	}

	// Climb from the departure elevation to the first leg's cruise
	// altitude; the distance covered comes out of that leg.
	legs = append([]RouteLeg(nil), legs...)
	if climb := legs[0].Altitude - legs[0].From.Elevation; climb > 0 {
		fp.Climb.Hours = climb / prof.Climb.Rate / 60
		fp.Climb.Distance = prof.Climb.TAS * fp.Climb.Hours
		fp.Climb.Fuel = prof.Climb.FuelFlow * fp.Climb.Hours
		weight -= prof.FuelWeight(fp.Climb.Fuel)
	}

	// Likewise the descent to the destination elevation, out of the
	// last leg.
	last := len(legs) - 1
	if descent := legs[last].Altitude - legs[last].To.Elevation; descent > 0 {
		fp.Descent.Hours = descent / prof.Descent.Rate / 60
		fp.Descent.Distance = prof.Descent.TAS * fp.Descent.Hours
		fp.Descent.Fuel = prof.Descent.FuelFlow * fp.Descent.Hours
	}

	legs[0].Distance -= fp.Climb.Distance
	legs[last].Distance -= fp.Descent.Distance
	if legs[0].Distance <= 0 || legs[last].Distance <= 0 {
		fp.warnf("route is too short for a full climb and descent profile")
		// Plan the fuel as if the route were flown level; pessimistic
		// for descent, close enough for a route this short.
		legs[0].Distance = max(1, legs[0].Distance)
		legs[last].Distance = max(1, legs[last].Distance)
	}

	computeLeg := func(leg RouteLeg) (LegResult, error) {
		var r LegResult
		var err error
		if p.Grid == nil {
			r, err = ComputeLegWind(leg, &prof.Table, wx.Wind{Variable: true}, weight)
		} else {
			r, err = ComputeLeg(leg, &prof.Table, p.Grid, weight)
		}
		if errors.Is(err, ErrWindExceedsPerformance) {
			fp.warnf("%s: wind exceeds aircraft performance; planned with zero wind", leg)
			r, err = ComputeLegWind(leg, &prof.Table, wx.Wind{Variable: true}, weight)
			r.Infeasible = true
		}
		return r, err
	}

	var cruiseFuel float32
	for _, leg := range legs {
		r, err := computeLeg(leg)
		if err != nil {
			return nil, err
		}
		if r.Clamped {
			fp.warnf("%s: outside sampled performance or forecast data; values clamped", leg)
		}

		weight -= prof.FuelWeight(r.Fuel)
		cruiseFuel += r.Fuel
		fp.TotalHours += r.Hours
		fp.Legs = append(fp.Legs, r)
	}

	fp.TripFuel = fp.Climb.Fuel + cruiseFuel + fp.Descent.Fuel
	fp.TotalHours += fp.Climb.Hours + fp.Descent.Hours
	fp.Contingency = fp.TripFuel * prof.ContingencyPct / 100

	final := fp.Legs[len(fp.Legs)-1]
	if p.ReserveMinutes > 0 {
		fp.Reserve = p.ReserveMinutes / 60 * final.FuelFlow
	} else {
		fp.Reserve = prof.ReserveFuel
	}

	fp.BlockFuel = fp.Taxi.Fuel + fp.TripFuel + fp.Contingency + fp.Reserve

	if alternate != nil {
		r, err := computeLeg(*alternate)
		if err != nil {
			return nil, err
		}
		fp.Alternate = &r
		fp.BlockFuel += r.Fuel
	}

	// Endurance and still-air range on full usable fuel, less taxi and
	// reserve, at the average planned cruise flow.
	var cruiseHours float32
	for _, r := range fp.Legs {
		cruiseHours += r.Hours
	}
	if avgFlow := cruiseFuel / cruiseHours; avgFlow > 0 {
		fp.EnduranceHours = (prof.FuelCapacity - fp.Taxi.Fuel - fp.Reserve) / avgFlow
		fp.MaxRange = fp.EnduranceHours * final.TAS
	}

	fp.FuelOK = fp.BlockFuel <= prof.FuelCapacity
	if !fp.FuelOK {
		fp.Deficit = fp.BlockFuel - prof.FuelCapacity
		fp.warnf("block fuel %.1f exceeds usable capacity %.1f by %.1f",
			fp.BlockFuel, prof.FuelCapacity, fp.Deficit)
	}

	if p.Lg != nil {
		p.Lg.Debugf("planned %d legs: block %.1f, %.1f hours, fuel ok %v",
			len(fp.Legs), fp.BlockFuel, fp.TotalHours, fp.FuelOK)
	}

	return fp, nil
}

func (fp *FuelPlan) warnf(f string, args ...interface{}) {
	fp.Warnings = append(fp.Warnings, fmt.Sprintf(f, args...))
}
