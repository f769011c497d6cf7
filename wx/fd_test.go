// wx/fd_test.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import (
	"testing"

	"github.com/mmp/preflight/util"
)

func TestDecodeFDToken(t *testing.T) {
	for _, tc := range []struct {
		tok  string
		alt  float32
		want WindLayer
		ok   bool
	}{
		{tok: "9900", alt: 3000, want: WindLayer{Variable: true}, ok: true},
		{tok: "9900-09", alt: 9000, want: WindLayer{Variable: true, Temperature: -9, TempValid: true}, ok: true},
		{tok: "0311+00", alt: 3000, want: WindLayer{Direction: 30, Speed: 11, TempValid: true}, ok: true},
		{tok: "3210-01", alt: 6000, want: WindLayer{Direction: 320, Speed: 10, Temperature: -1, TempValid: true}, ok: true},
		// No sign at FL300; temperature is negative by convention.
		{tok: "296041", alt: 30000, want: WindLayer{Direction: 290, Speed: 60, Temperature: -41, TempValid: true}, ok: true},
		// High-wind encoding: direction (78-50)*10, speed 03+100.
		{tok: "7803-21", alt: 18000, want: WindLayer{Direction: 280, Speed: 103, Temperature: -21, TempValid: true}, ok: true},
		{tok: "describ", alt: 3000, ok: false},
		{tok: "////", alt: 3000, ok: false},
		{tok: "", alt: 3000, ok: false},
	} {
		var e util.ErrorLogger
		layer, ok := decodeFDToken(tc.tok, tc.alt, &e)
		if ok != tc.ok {
			t.Errorf("%q: decoded %v, expected %v", tc.tok, ok, tc.ok)
			continue
		}
		if ok && layer != tc.want {
			t.Errorf("%q: got %+v, expected %+v", tc.tok, layer, tc.want)
		}
	}
}

const fdLowSample = `000
FBUS31 KWNO 241151
FD1US1
DATA BASED ON 241200Z
VALID 241800Z   FOR USE 1400-2100Z. TEMPS NEG ABV 24000

FT  3000    6000    9000   12000   18000   24000  30000  34000  39000
ABI      2528 2732+21 2736+16 2735+10 2633-01 2728-13 283725 284036 285346
BOS 2312 2315+10 2321+05 2330-01 2349-13 2358-25 237337 236348 235856
DEN              9900    2018+05 2130-05 2245-18 226430 226539 226750
ZZZ 1010 1515+10 2020+05 2525-01 3030-13 3535-25 360037 360048 360056
`

func TestParseFD(t *testing.T) {
	var e util.ErrorLogger
	stations := ParseFD(fdLowSample, &e)
	if e.HaveErrors() {
		t.Fatalf("unexpected parse errors: %s", e.String())
	}

	byID := make(map[string]StationWinds)
	for _, st := range stations {
		byID[st.ID] = st
	}

	// ZZZ isn't a known FD station; it should have been skipped.
	if _, ok := byID["ZZZ"]; ok {
		t.Errorf("unknown station ZZZ was not skipped")
	}

	abi, ok := byID["ABI"]
	if !ok {
		t.Fatalf("ABI missing from parsed stations")
	}
	if len(abi.Layers) != 9 {
		t.Fatalf("ABI: got %d layers, expected 9", len(abi.Layers))
	}
	if l := abi.Layers[0]; l.Altitude != 3000 || l.Direction != 250 || l.Speed != 28 || l.TempValid {
		t.Errorf("ABI at 3000: got %+v", l)
	}
	if l := abi.Layers[1]; l.Altitude != 6000 || l.Temperature != 21 || !l.TempValid {
		t.Errorf("ABI at 6000: got %+v", l)
	}

	// Denver sits above 3000' and above 6000', so its first two columns
	// are blank; the row's tokens must align with the higher levels.
	den, ok := byID["DEN"]
	if !ok {
		t.Fatalf("DEN missing from parsed stations")
	}
	if den.Layers[0].Altitude != 9000 || !den.Layers[0].Variable {
		t.Errorf("DEN first layer: got %+v, expected light and variable at 9000", den.Layers[0])
	}
	if l := den.Layers[len(den.Layers)-1]; l.Altitude != 39000 || l.Temperature != -50 {
		t.Errorf("DEN top layer: got %+v", l)
	}
}

func TestParseFDBadHeader(t *testing.T) {
	var e util.ErrorLogger
	if stations := ParseFD("no header here\njust text\n", &e); stations != nil {
		t.Errorf("expected nil stations for text without a header")
	}
	if !e.HaveErrors() {
		t.Errorf("expected an error for text without a header")
	}
}
