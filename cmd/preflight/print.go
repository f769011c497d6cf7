// cmd/preflight/print.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mmp/preflight/aviation"
	"github.com/mmp/preflight/plan"
	"github.com/mmp/preflight/pln"
	"github.com/mmp/preflight/util"
)

// PrintPlan writes the fuel plan phase by phase: taxi, climb, each
// cruise leg with its wind and groundspeed, descent, then the totals
// and any warnings.
func PrintPlan(w io.Writer, prof *aviation.AircraftProfile, fp *plan.FuelPlan, course, alt float32) {
	unit := string(prof.FuelUnit)

	fmt.Fprintf(w, "%s  course %03.0f  cruise %.0f'\n\n", prof.Name, course, alt)

	fmt.Fprintf(w, "%-28s %6s %6s %8s\n", "phase", "time", "dist", "fuel")
	phase := func(name string, p plan.PhaseResult) {
		fmt.Fprintf(w, "%-28s %6s %4.0fnm %6.1f %s\n", name, hhmm(p.Hours), p.Distance, p.Fuel, unit)
	}
	phase("taxi/runup", fp.Taxi)
	phase("climb", fp.Climb)

	for _, r := range fp.Legs {
		name := fmt.Sprintf("%s-%s", r.Leg.From.Ident, r.Leg.To.Ident)
		fmt.Fprintf(w, "%-28s %6s %4.0fnm %6.1f %s  %s hdg %03.0f gs %.0f%s\n",
			name, hhmm(r.Hours), r.Leg.Distance, r.Fuel, unit,
			r.Wind, r.Heading, r.GS,
			util.Select(r.Infeasible, "  (wind exceeds performance; planned with zero wind)", ""))
	}

	phase("descent", fp.Descent)
	fmt.Fprintln(w)

	line := func(name string, amount float32) {
		fmt.Fprintf(w, "%-28s %20.1f %s\n", name, amount, unit)
	}
	line("trip fuel", fp.TripFuel)
	line(fmt.Sprintf("contingency (%.0f%%)", prof.ContingencyPct), fp.Contingency)
	line("reserve", fp.Reserve)
	if fp.Alternate != nil {
		line("alternate "+fp.Alternate.Leg.To.Ident, fp.Alternate.Fuel)
	}
	line("block fuel", fp.BlockFuel)
	line("usable capacity", prof.FuelCapacity)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-28s %20s\n", "total time en route", hhmm(fp.TotalHours))
	fmt.Fprintf(w, "%-28s %20s\n", "endurance", hhmm(fp.EnduranceHours))
	fmt.Fprintf(w, "%-28s %18.0f nm\n", "still-air range", fp.MaxRange)

	if !fp.FuelOK {
		fmt.Fprintf(w, "\n*** INSUFFICIENT FUEL: %.1f %s over capacity ***\n", fp.Deficit, unit)
	}
	for _, warn := range fp.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}

// PrintSweep writes a one-line-per-altitude comparison of the swept
// plans, marking the best one.
func PrintSweep(w io.Writer, prof *aviation.AircraftProfile, plans []plan.AltitudePlan) {
	best, haveBest := plan.BestAltitude(plans)

	fmt.Fprintf(w, "\n%8s %8s %10s %6s\n", "altitude", "time", "block", "")
	for _, ap := range plans {
		if ap.Err != nil {
			fmt.Fprintf(w, "%7.0f' %v\n", ap.Altitude, ap.Err)
			continue
		}
		mark := ""
		if haveBest && ap.Altitude == best.Altitude {
			mark = "<- best"
		}
		if !ap.Plan.FuelOK {
			mark += util.Select(mark != "", " ", "") + "(insufficient fuel)"
		}
		fmt.Fprintf(w, "%7.0f' %8s %7.1f %s %s\n", ap.Altitude, hhmm(ap.Plan.TotalHours),
			ap.Plan.BlockFuel, prof.FuelUnit, mark)
	}
}

func hhmm(hours float32) string {
	m := int(hours*60 + 0.5)
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

// ExportPLN writes the route as an MSFS flight plan. The first and
// last waypoints are assumed to be airports; anything between them is
// exported as a user waypoint.
func ExportPLN(path string, cfg Config, route []plan.Waypoint, alt float32) error {
	wp := func(p plan.Waypoint, typ string) pln.Waypoint {
		return pln.Waypoint{
			Ident:     p.Ident,
			Type:      typ,
			Location:  p.Location,
			Elevation: p.Elevation,
		}
	}

	p := pln.Plan{
		Rules:          cfg.Rules,
		CruiseAltitude: alt,
		Departure:      wp(route[0], "Airport"),
		Destination:    wp(route[len(route)-1], "Airport"),
		Enroute:        util.MapSlice(route[1:len(route)-1], func(w plan.Waypoint) pln.Waypoint { return wp(w, "User") }),
		Description:    "Exported by preflight",
	}
	if cfg.Alternate != nil {
		a := wp(cfg.Alternate.waypoint(), "Airport")
		p.Alternate = &a
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pln.Export(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
