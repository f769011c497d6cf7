// aviation/perftable_test.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"errors"
	"testing"

	"github.com/mmp/preflight/util"
)

func close32(a, b float32) bool {
	d := a - b
	return d > -0.01 && d < 0.01
}

func altOnlyTable() PerformanceTable {
	return PerformanceTable{
		Altitudes: []float32{2000, 4500, 6500, 8500},
		Samples: []PerfSample{
			{TAS: 90, FuelFlow: 5.5},
			{TAS: 92, FuelFlow: 5.3},
			{TAS: 93, FuelFlow: 5.0},
			{TAS: 91, FuelFlow: 4.7},
		},
	}
}

func TestPerformanceTableLookupExact(t *testing.T) {
	tab := altOnlyTable()
	for i, alt := range tab.Altitudes {
		s, clamped, err := tab.Lookup(alt, 15, 1600)
		if err != nil {
			t.Fatalf("Lookup(%f): %v", alt, err)
		}
		if clamped {
			t.Errorf("Lookup(%f): unexpectedly clamped", alt)
		}
		if s != tab.Samples[i] {
			t.Errorf("Lookup(%f): got %+v, expected %+v", alt, s, tab.Samples[i])
		}
	}
}

func TestPerformanceTableLookupInterpolate(t *testing.T) {
	tab := altOnlyTable()
	s, clamped, err := tab.Lookup(5500, 15, 1600) // halfway between 4500 and 6500
	if err != nil {
		t.Fatal(err)
	}
	if clamped {
		t.Errorf("unexpectedly clamped")
	}
	if !close32(s.TAS, 92.5) || !close32(s.FuelFlow, 5.15) {
		t.Errorf("got %+v, expected TAS 92.5, fuel flow 5.15", s)
	}
}

func TestPerformanceTableLookupClamp(t *testing.T) {
	tab := altOnlyTable()
	for _, tc := range []struct {
		alt  float32
		want PerfSample
	}{
		{alt: 500, want: tab.Samples[0]},
		{alt: 12000, want: tab.Samples[3]},
	} {
		s, clamped, err := tab.Lookup(tc.alt, 15, 1600)
		if err != nil {
			t.Fatalf("Lookup(%f): %v", tc.alt, err)
		}
		if !clamped {
			t.Errorf("Lookup(%f): expected a clamped result", tc.alt)
		}
		if s != tc.want {
			t.Errorf("Lookup(%f): got %+v, expected edge sample %+v", tc.alt, s, tc.want)
		}
	}
}

func TestPerformanceTableTempAxis(t *testing.T) {
	tab := PerformanceTable{
		Altitudes: []float32{4000, 8000},
		Temps:     []float32{-5, 35},
		Samples: []PerfSample{
			{TAS: 137, FuelFlow: 13.6}, {TAS: 143, FuelFlow: 12.8},
			{TAS: 141, FuelFlow: 12.9}, {TAS: 147, FuelFlow: 12.1},
		},
	}

	// Center of the grid in both axes.
	s, clamped, err := tab.Lookup(6000, 15, 0)
	if err != nil {
		t.Fatal(err)
	}
	if clamped {
		t.Errorf("unexpectedly clamped")
	}
	if !close32(s.TAS, 142) || !close32(s.FuelFlow, 12.85) {
		t.Errorf("got %+v, expected TAS 142, fuel flow 12.85", s)
	}

	// Temperature beyond the sampled range clamps and is flagged.
	s, clamped, err = tab.Lookup(4000, 50, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !clamped {
		t.Errorf("expected a clamped result for an out of range temperature")
	}
	if !close32(s.TAS, 143) {
		t.Errorf("got TAS %f, expected the hot edge's 143", s.TAS)
	}
}

func TestPerformanceTableWeightAxis(t *testing.T) {
	tab := PerformanceTable{
		Altitudes: []float32{6000, 8000},
		Weights:   []float32{4400, 5500},
		Samples: []PerfSample{
			{TAS: 190, FuelFlow: 33.4}, {TAS: 185, FuelFlow: 34.0},
			{TAS: 194, FuelFlow: 31.9}, {TAS: 189, FuelFlow: 32.5},
		},
	}
	s, clamped, err := tab.Lookup(6000, 15, 4950)
	if err != nil {
		t.Fatal(err)
	}
	if clamped {
		t.Errorf("unexpectedly clamped")
	}
	if !close32(s.TAS, 187.5) || !close32(s.FuelFlow, 33.7) {
		t.Errorf("got %+v, expected TAS 187.5, fuel flow 33.7", s)
	}
}

func TestPerformanceTableLookupErrors(t *testing.T) {
	tab := altOnlyTable()
	if _, _, err := tab.Lookup(float32(nan()), 15, 1600); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("NaN altitude: got %v, expected ErrInvalidQuery", err)
	}

	short := PerformanceTable{
		Altitudes: []float32{5000},
		Samples:   []PerfSample{{TAS: 100, FuelFlow: 8}},
	}
	if _, _, err := short.Lookup(5000, 15, 1600); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("single altitude: got %v, expected ErrInvalidTable", err)
	}

	onePointTemp := altOnlyTable()
	onePointTemp.Temps = []float32{15}
	if _, _, err := onePointTemp.Lookup(5000, 15, 1600); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("single temperature sample: got %v, expected ErrInvalidTable", err)
	}
}

func TestPerformanceTableValidate(t *testing.T) {
	var e util.ErrorLogger
	good := altOnlyTable()
	good.Validate(&e)
	if e.HaveErrors() {
		t.Errorf("valid table reported errors: %s", e.String())
	}

	for _, tc := range []struct {
		name  string
		mutil func(*PerformanceTable)
	}{
		{"unsorted altitudes", func(t *PerformanceTable) { t.Altitudes[1] = 1000 }},
		{"sample count mismatch", func(t *PerformanceTable) { t.Samples = t.Samples[:3] }},
		{"non-positive TAS", func(t *PerformanceTable) { t.Samples[0].TAS = 0 }},
		{"non-positive fuel flow", func(t *PerformanceTable) { t.Samples[2].FuelFlow = -1 }},
	} {
		var e util.ErrorLogger
		tab := altOnlyTable()
		tc.mutil(&tab)
		tab.Validate(&e)
		if !e.HaveErrors() {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}

func nan() float64 {
	z := 0.0
	return z / z
}
