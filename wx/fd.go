// wx/fd.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import (
	"strconv"
	"strings"

	"github.com/mmp/preflight/math"
	"github.com/mmp/preflight/util"
)

// Forecast levels of the two FD winds aloft products, in feet.
var (
	FDLowLevels  = []float32{3000, 6000, 9000, 12000, 18000, 24000, 30000, 34000, 39000}
	FDHighLevels = []float32{24000, 30000, 34000, 39000, 45000, 53000}
)

// ParseFD decodes the text of an FD winds aloft product into per-station
// forecasts. The format is a fixed table: a header line like
//
//	FT  3000    6000    9000   12000   18000   24000  30000  34000  39000
//
// followed by one line per station,
//
//	ABI      0311+00 3210-01 3218-04 3041-13 2950-25 296041 296351 297760
//
// Columns may be blank at levels below a station's elevation, so tokens
// are matched to levels from the right. Stations not in the FD station
// database are skipped since we have no location to hang them on.
// Malformed rows and tokens are noted in the ErrorLogger and skipped;
// parsing continues so one bad row doesn't discard the whole product.
func ParseFD(text string, e *util.ErrorLogger) []StationWinds {
	e.Push("FD winds aloft")
	defer e.Pop()

	lines := strings.Split(text, "\n")

	// Find the header line and pull out its forecast levels.
	var levels []float32
	start := 0
	for i, line := range lines {
		f := strings.Fields(line)
		if len(f) < 2 || f[0] != "FT" {
			continue
		}
		for _, s := range f[1:] {
			alt, err := strconv.Atoi(s)
			if err != nil {
				e.ErrorString("non-numeric level %q in header %q", s, line)
				return nil
			}
			levels = append(levels, float32(alt))
		}
		start = i + 1
		break
	}
	if len(levels) == 0 {
		e.Error(ErrMalformedFDText)
		return nil
	}

	var stations []StationWinds
	for _, line := range lines[start:] {
		f := strings.Fields(line)
		if len(f) < 2 {
			continue
		}

		id := strings.ToUpper(f[0])
		loc, ok := fdStations[id]
		if !ok {
			continue
		}
		tokens := f[1:]
		if len(tokens) > len(levels) {
			e.ErrorString("station %s has %d columns for %d levels", id, len(tokens), len(levels))
			continue
		}

		// Stations above 3000' MSL (and so on up) have blank low-level
		// columns, so align tokens with the highest levels.
		st := StationWinds{ID: id, Location: loc}
		for i, tok := range tokens {
			alt := levels[len(levels)-len(tokens)+i]
			if layer, ok := decodeFDToken(tok, alt, e); ok {
				layer.Altitude = alt
				st.Layers = append(st.Layers, layer)
			}
		}
		if len(st.Layers) > 0 {
			stations = append(stations, st)
		}
	}

	return stations
}

// decodeFDToken decodes one column of an FD station row. The formats
// seen in real data:
//
//	9900       light and variable, no temperature
//	9900-09    light and variable, -9C
//	0311+00    030 at 11 kt, 0C
//	3210-01    320 at 10 kt, -1C
//	296041     290 at 60 kt, -41C (no sign at/above FL240; always negative)
//	7803-21    high wind encoding: dir (78-50)*10=280, speed 103 kt
//	////       no data
//
// When the two direction digits exceed 50, subtract 50 and add 100 kt to
// the speed; that's how the product encodes winds of 100-199 kt.
func decodeFDToken(tok string, alt float32, e *util.ErrorLogger) (WindLayer, bool) {
	if tok == "" || strings.HasPrefix(tok, "/") {
		return WindLayer{}, false
	}
	if len(tok) < 4 {
		e.ErrorString("winds aloft group %q is too short", tok)
		return WindLayer{}, false
	}

	var layer WindLayer

	parseTemp := func(s string) {
		if s == "" {
			return
		}
		t, err := strconv.Atoi(s)
		if err != nil {
			e.ErrorString("invalid temperature %q in winds aloft group %q", s, tok)
			return
		}
		layer.Temperature = float32(t)
		if alt >= 24000 {
			// Temperatures are printed unsigned at and above FL240;
			// they are always negative there.
			layer.Temperature = -math.Abs(layer.Temperature)
		}
		layer.TempValid = true
	}

	if tok[:4] == "9900" {
		layer.Variable = true
		parseTemp(tok[4:])
		return layer, true
	}

	dd, err0 := strconv.Atoi(tok[:2])
	ss, err1 := strconv.Atoi(tok[2:4])
	if err0 != nil || err1 != nil {
		e.ErrorString("invalid winds aloft group %q", tok)
		return WindLayer{}, false
	}
	if dd > 50 {
		dd -= 50
		ss += 100
	}
	if dd > 36 {
		e.ErrorString("implausible direction in winds aloft group %q", tok)
		return WindLayer{}, false
	}

	layer.Direction = float32(10 * dd)
	layer.Speed = float32(ss)
	parseTemp(tok[4:])

	return layer, true
}
