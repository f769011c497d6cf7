// plan/cruise_test.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plan

import (
	"errors"
	"slices"
	"testing"
)

func TestSelectCruiseAltitude(t *testing.T) {
	c := DefaultHemisphericConfig()
	for _, tc := range []struct {
		course, minSafe, ceiling float32
		want                     float32
	}{
		{course: 90, minSafe: 4000, ceiling: 14000, want: 5500},
		{course: 270, minSafe: 4000, ceiling: 14000, want: 6500},
		{course: 0, minSafe: 4000, ceiling: 14000, want: 5500},
		{course: 179, minSafe: 4000, ceiling: 14000, want: 5500},
		{course: 180, minSafe: 4000, ceiling: 14000, want: 6500},
		{course: 359, minSafe: 4000, ceiling: 14000, want: 6500},
		{course: 90, minSafe: 8200, ceiling: 14000, want: 11500},
		{course: 270, minSafe: 8200, ceiling: 14000, want: 10500},
	} {
		alt, err := SelectCruiseAltitude(tc.course, tc.minSafe, tc.ceiling, c)
		if err != nil {
			t.Errorf("course %.0f min safe %.0f: %v", tc.course, tc.minSafe, err)
			continue
		}
		if alt != tc.want {
			t.Errorf("course %.0f min safe %.0f: got %.0f, expected %.0f",
				tc.course, tc.minSafe, alt, tc.want)
		}
		if alt < tc.minSafe {
			t.Errorf("course %.0f: selected %.0f below min safe %.0f", tc.course, alt, tc.minSafe)
		}
		if alt > tc.ceiling {
			t.Errorf("course %.0f: selected %.0f above ceiling %.0f", tc.course, alt, tc.ceiling)
		}
	}
}

func TestSelectCruiseAltitudeNoLegal(t *testing.T) {
	c := DefaultHemisphericConfig()
	if _, err := SelectCruiseAltitude(90, 13000, 14000, c); !errors.Is(err, ErrNoLegalAltitude) {
		t.Errorf("ceiling-limited selection: got %v, expected ErrNoLegalAltitude", err)
	}
}

func TestSelectCruiseAltitudeBelowTransition(t *testing.T) {
	// The +500 offset doesn't apply below the transition altitude.
	c := HemisphericConfig{TransitionAltitude: 10000, MinSafeClearance: 1000}
	alt, err := SelectCruiseAltitude(90, 500, 14000, c)
	if err != nil {
		t.Fatal(err)
	}
	if alt != 3000 {
		t.Errorf("got %.0f, expected 3000 with no offset below the transition altitude", alt)
	}

	// Above it, the offset returns.
	if alt, _ = SelectCruiseAltitude(90, 9500, 14000, c); alt != 11500 {
		t.Errorf("got %.0f, expected 11500 above the transition altitude", alt)
	}
}

func TestLegalAltitudes(t *testing.T) {
	c := DefaultHemisphericConfig()
	got := LegalAltitudes(90, 4000, 12000, c)
	if want := []float32{5500, 7500, 9500, 11500}; !slices.Equal(got, want) {
		t.Errorf("eastbound: got %v, expected %v", got, want)
	}

	got = LegalAltitudes(270, 4000, 12000, c)
	if want := []float32{6500, 8500, 10500}; !slices.Equal(got, want) {
		t.Errorf("westbound: got %v, expected %v", got, want)
	}

	if got = LegalAltitudes(90, 13000, 14000, c); got != nil {
		t.Errorf("no legal levels: got %v, expected none", got)
	}
}
