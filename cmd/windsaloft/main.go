// cmd/windsaloft/main.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// windsaloft fetches and decodes FB winds-aloft forecasts. With no
// other flags it dumps every decoded station; -station reports one
// station, and -lat/-lon report the blended wind at a position.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mmp/preflight/log"
	"github.com/mmp/preflight/math"
	"github.com/mmp/preflight/util"
	"github.com/mmp/preflight/wx"
)

var (
	level    = flag.String("level", "low", "Forecast level to fetch: low or high")
	file     = flag.String("file", "", "Decode a saved FB product instead of fetching")
	station  = flag.String("station", "", "Report the wind at the given station")
	lat      = flag.Float64("lat", 0, "Report the blended wind at this latitude")
	lon      = flag.Float64("lon", 0, "Report the blended wind at this longitude")
	alt      = flag.Float64("alt", 6000, "Altitude for -station and -lat/-lon reports")
	logLevel = flag.String("loglevel", "warn", "Logging level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, "")

	var text string
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			fatal("%s: %v", *file, err)
		}
		text = string(b)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		if text, err = wx.NewFetcher(lg).FetchText(ctx, *level); err != nil {
			fatal("%s: %v", *level, err)
		}
	}

	var e util.ErrorLogger
	stations := wx.ParseFD(text, &e)
	if e.HaveErrors() {
		fmt.Fprint(os.Stderr, e.String())
	}
	if len(stations) == 0 {
		fatal("no stations decoded")
	}

	grid := wx.MakeWindGrid(stations)

	switch {
	case *station != "":
		w, err := grid.StationWindAt(*station, float32(*alt))
		if err != nil {
			fatal("%s: %v", *station, err)
		}
		fmt.Printf("%s at %.0f': %s\n", *station, *alt, w)

	case *lat != 0 || *lon != 0:
		p := math.Point2LL{float32(*lon), float32(*lat)}
		w, err := grid.WindAt(p, float32(*alt))
		if err != nil {
			fatal("%s: %v", p.DDString(), err)
		}
		fmt.Printf("%s at %.0f': %s (nearest station %s)\n", p.DDString(), *alt, w, w.Station)

	default:
		for _, st := range stations {
			fmt.Printf("%-4s", st.ID)
			for _, l := range st.Layers {
				w := wx.Wind{Direction: l.Direction, Speed: l.Speed,
					Temperature: l.Temperature, TempValid: l.TempValid, Variable: l.Variable}
				fmt.Printf("  %.0f' %s", l.Altitude, w)
			}
			fmt.Println()
		}
	}
}

func fatal(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}
