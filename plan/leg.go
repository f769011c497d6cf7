// plan/leg.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plan

import (
	"github.com/mmp/preflight/aviation"
	"github.com/mmp/preflight/math"
	"github.com/mmp/preflight/wx"
)

// ComputeLeg computes ground speed, heading, time, and fuel for one leg
// at the given gross weight. The performance table is queried at the
// leg's cruise altitude and the wind grid at the leg's midpoint. A
// wx.ErrNoWindData error propagates to the caller, which must decide
// explicitly whether a zero-wind plan is acceptable (ComputeLegWind with
// a zero Wind).
func ComputeLeg(leg RouteLeg, table *aviation.PerformanceTable, grid *wx.WindGrid,
	weight float32) (LegResult, error) {
	wind, err := grid.WindAt(leg.MidPoint(), leg.Altitude)
	if err != nil {
		return LegResult{}, err
	}
	return ComputeLegWind(leg, table, wind, weight)
}

// ComputeLegWind is ComputeLeg with the wind supplied by the caller.
func ComputeLegWind(leg RouteLeg, table *aviation.PerformanceTable, wind wx.Wind,
	weight float32) (LegResult, error) {
	if leg.Distance <= 0 {
		return LegResult{}, ErrInvalidLeg
	}

	temp := aviation.ISATemperature(leg.Altitude)
	if wind.TempValid {
		temp = wind.Temperature
	}

	perf, clamped, err := table.Lookup(leg.Altitude, temp, weight)
	if err != nil {
		return LegResult{}, err
	}

	r := LegResult{
		Leg:      leg,
		Wind:     wind,
		TAS:      perf.TAS,
		FuelFlow: perf.FuelFlow,
		Clamped:  clamped || wind.Clamped,
	}

	ws := wind.Speed
	if wind.Variable {
		ws = 0
	}

	// Wind triangle, law of sines form: the crosswind component must be
	// countered by TAS*sin(wca).
	awa := math.Radians(wind.Direction - leg.Course)
	arg := ws * math.Sin(awa) / perf.TAS
	if arg < -1 || arg > 1 {
		return LegResult{}, ErrWindExceedsPerformance
	}
	r.WCA = math.Degrees(math.SafeASin(arg))
	r.Heading = math.NormalizeHeading(leg.Course + r.WCA)
	r.GS = perf.TAS*math.Cos(math.Radians(r.WCA)) - ws*math.Cos(awa)
	if r.GS <= 0 {
		return LegResult{}, ErrWindExceedsPerformance
	}

	r.Hours = leg.Distance / r.GS
	r.Fuel = r.Hours * perf.FuelFlow

	return r, nil
}

// HeadwindComponent returns the headwind component of the wind along the
// course (negative for a tailwind).
func HeadwindComponent(wind wx.Wind, course float32) float32 {
	if wind.Variable {
		return 0
	}
	return wind.Speed * math.Cos(math.Radians(wind.Direction-course))
}

// CrosswindComponent returns the crosswind component of the wind across
// the course, positive from the right.
func CrosswindComponent(wind wx.Wind, course float32) float32 {
	if wind.Variable {
		return 0
	}
	return wind.Speed * math.Sin(math.Radians(wind.Direction-course))
}
