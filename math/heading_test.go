// math/heading_test.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestNormalizeHeading(t *testing.T) {
	h := [][2]float32{{90, 90}, {360, 0}, {-10, 350}, {380, 20}, {-380, 340}}
	for _, pair := range h {
		if NormalizeHeading(pair[0]) != pair[1] {
			t.Errorf("normalize heading error: %f -> %f, expected %f",
				pair[0], NormalizeHeading(pair[0]), pair[1])
		}
	}
}

func TestOppositeHeading(t *testing.T) {
	h := [][2]float32{{90, 270}, {1, 181}, {2, 182}, {350, 170}}
	for _, pair := range h {
		if OppositeHeading(pair[0]) != pair[1] {
			t.Errorf("opposite heading error: %f -> %f, expected %f",
				pair[0], OppositeHeading(pair[0]), pair[1])
		}
		if OppositeHeading(pair[1]) != pair[0] {
			t.Errorf("opposite heading error: %f -> %f, expected %f",
				pair[1], OppositeHeading(pair[1]), pair[0])
		}
	}
}

func TestHeadingDifference(t *testing.T) {
	type hd struct {
		a, b, d float32
	}

	for _, h := range []hd{hd{10, 90, 80}, hd{350, 12, 22}, hd{340, 120, 140}, hd{-90, 80, 170},
		hd{40, 181, 141}, hd{-170, 160, 30}, hd{-120, -150, 30}} {
		if HeadingDifference(h.a, h.b) != h.d {
			t.Errorf("headingDifference(%f, %f) -> %f, expected %f", h.a, h.b,
				HeadingDifference(h.a, h.b), h.d)
		}
		if HeadingDifference(h.b, h.a) != h.d {
			t.Errorf("headingDifference(%f, %f) -> %f, expected %f", h.b, h.a,
				HeadingDifference(h.b, h.a), h.d)
		}
	}
}

func TestHeadingSignedDifference(t *testing.T) {
	type hd struct {
		a, b, d float32
	}

	for _, h := range []hd{hd{10, 90, 80}, hd{350, 10, 20}, hd{10, 350, -20},
		hd{90, 270, 180}, hd{180, 170, -10}, hd{0, 181, -179}} {
		if d := HeadingSignedDifference(h.a, h.b); d != h.d {
			t.Errorf("headingSignedDifference(%f, %f) -> %f, expected %f", h.a, h.b, d, h.d)
		}
	}
}

func TestLerpHeading(t *testing.T) {
	type lh struct {
		x, a, b, h float32
	}

	// The 350-10 cases are the ones that matter: interpolation must cross
	// through north, not swing around through 180.
	for _, l := range []lh{lh{0.5, 350, 10, 0}, lh{0.25, 350, 10, 355}, lh{0.75, 350, 10, 5},
		lh{0.5, 10, 350, 0}, lh{0, 80, 120, 80}, lh{1, 80, 120, 120}, lh{0.5, 80, 120, 100},
		lh{0.5, 0, 359, 359.5}} {
		if h := LerpHeading(l.x, l.a, l.b); Abs(h-l.h) > 0.01 {
			t.Errorf("lerpHeading(%f, %f, %f) -> %f, expected %f", l.x, l.a, l.b, h, l.h)
		}
	}
}

func TestHeading2LL(t *testing.T) {
	// JFK to BOS is roughly northeast; JFK to MIA roughly southwest.
	jfk := Point2LL{-73.78, 40.63}
	bos := Point2LL{-71.01, 42.36}
	mia := Point2LL{-80.29, 25.79}

	nmPerLongitude := NMPerLongitudeAt(jfk)
	if h := Heading2LL(jfk, bos, nmPerLongitude); h < 30 || h > 60 {
		t.Errorf("JFK->BOS heading %f not northeasterly", h)
	}
	if h := Heading2LL(jfk, mia, nmPerLongitude); h < 180 || h > 225 {
		t.Errorf("JFK->MIA heading %f not southwesterly", h)
	}

	// Due-north check.
	a, b := Point2LL{-100, 40}, Point2LL{-100, 41}
	if h := Heading2LL(a, b, NMPerLongitudeAt(a)); HeadingDifference(h, 0) > 0.5 {
		t.Errorf("due north heading came back as %f", h)
	}
}

func TestNMDistance2LL(t *testing.T) {
	// One degree of latitude is 60nm.
	a, b := Point2LL{-100, 40}, Point2LL{-100, 41}
	if d := NMDistance2LL(a, b); Abs(d-60) > 0.5 {
		t.Errorf("one degree latitude distance %f, expected ~60", d)
	}

	if d := NMDistance2LL(a, a); d != 0 {
		t.Errorf("distance from point to itself %f", d)
	}
}
