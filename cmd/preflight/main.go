// cmd/preflight/main.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// preflight computes a fuel plan for a route described in a YAML file:
//
//	aircraft: C172
//	startWeight: 2400
//	reserveMinutes: 45
//	route:
//	  - {ident: KSEA, lat: 47.45, lon: -122.31, elevation: 433}
//	  - {ident: KPDX, lat: 45.59, lon: -122.60, elevation: 31}
//	alternate: {ident: KOLM, lat: 46.97, lon: -122.90, elevation: 209}
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mmp/preflight/aviation"
	"github.com/mmp/preflight/log"
	"github.com/mmp/preflight/math"
	"github.com/mmp/preflight/plan"
	"github.com/mmp/preflight/util"
	"github.com/mmp/preflight/wx"
)

var (
	zeroWind  = flag.Bool("zerowind", false, "Plan with zero wind instead of fetching winds aloft")
	sweep     = flag.Bool("sweep", false, "Compare the plan at every legal cruising level")
	plnPath   = flag.String("pln", "", "Also export an MSFS .pln flight plan to the given path")
	logLevel  = flag.String("loglevel", "info", "Logging level: debug, info, warn, error")
	logDir    = flag.String("logdir", "", "Directory for the debug log")
	listTypes = flag.Bool("aircraft", false, "List known aircraft types and exit")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	aviation.InitDB()

	if *listTypes {
		for _, id := range aviation.DB.AircraftIDs() {
			p, _ := aviation.DB.Profile(id)
			fmt.Printf("%-6s %s\n", id, p.Name)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: preflight [flags] <route.yaml>\nwhere [flags] may be:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := LoadConfig(flag.Arg(0))
	if err != nil {
		fatal("%s: %v", flag.Arg(0), err)
	}

	prof, err := aviation.DB.Profile(cfg.Aircraft)
	if err != nil {
		fatal("%s: %v (try -aircraft for the known types)", cfg.Aircraft, err)
	}

	route := util.MapSlice(cfg.Route, ConfigWaypoint.waypoint)
	first, last := route[0], route[len(route)-1]
	course := math.Heading2LL(first.Location, last.Location, math.NMPerLongitudeAt(first.Location))

	minSafe := cfg.MinSafeAltitude
	if minSafe == 0 {
		minSafe = max(first.Elevation, last.Elevation) + 1000
	}

	alt := cfg.CruiseAltitude
	if alt == 0 {
		if alt, err = plan.SelectCruiseAltitude(course, minSafe, prof.Ceiling,
			plan.DefaultHemisphericConfig()); err != nil {
			fatal("course %.0f, min safe %.0f: %v", course, minSafe, err)
		}
	}

	var legs []plan.RouteLeg
	for i := range route[:len(route)-1] {
		legs = append(legs, plan.MakeLeg(route[i], route[i+1], alt))
	}
	var alternate *plan.RouteLeg
	if cfg.Alternate != nil {
		l := plan.MakeLeg(last, cfg.Alternate.waypoint(), alt)
		alternate = &l
	}

	p := &plan.Planner{Profile: prof, ReserveMinutes: cfg.ReserveMinutes, Lg: lg}
	if !*zeroWind {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var e util.ErrorLogger
		grid, err := wx.NewFetcher(lg).FetchGrid(ctx, []string{wx.PickLevel(alt)}, &e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "winds aloft unavailable (%v); planning with zero wind\n", err)
		} else {
			p.Grid = grid
		}
		if e.HaveErrors() {
			e.PrintErrors(lg)
		}
	}

	startWeight := util.Select(cfg.StartWeight > 0, cfg.StartWeight, prof.MaxGrossWeight)
	fp, err := p.Plan(legs, startWeight, alternate)
	if err != nil {
		fatal("%v", err)
	}

	PrintPlan(os.Stdout, prof, fp, course, alt)

	if *sweep {
		plans, err := p.SweepAltitudes(legs, startWeight, alternate, course, minSafe,
			plan.DefaultHemisphericConfig())
		if err != nil {
			fatal("%v", err)
		}
		PrintSweep(os.Stdout, prof, plans)
	}

	if *plnPath != "" {
		if err := ExportPLN(*plnPath, cfg, route, alt); err != nil {
			fatal("%s: %v", *plnPath, err)
		}
		fmt.Printf("\nwrote %s\n", *plnPath)
	}
}

func fatal(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}
