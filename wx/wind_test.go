// wx/wind_test.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import (
	"testing"
)

func TestInterpolateLayers(t *testing.T) {
	layers := []WindLayer{
		{Altitude: 3000, Direction: 350, Speed: 10, Temperature: 10, TempValid: true},
		{Altitude: 9000, Direction: 10, Speed: 30, Temperature: -2, TempValid: true},
	}

	// Midway: direction must take the short way around through north.
	w := interpolateLayers(6000, layers)
	if w.Direction != 0 {
		t.Errorf("direction across north: got %f, expected 0", w.Direction)
	}
	if w.Speed != 20 {
		t.Errorf("speed: got %f, expected 20", w.Speed)
	}
	if !w.TempValid || w.Temperature != 4 {
		t.Errorf("temperature: got %+v, expected 4", w)
	}
	if w.Clamped {
		t.Errorf("in-range altitude reported clamping")
	}
}

func TestInterpolateLayersClamp(t *testing.T) {
	layers := []WindLayer{
		{Altitude: 3000, Direction: 240, Speed: 15},
		{Altitude: 9000, Direction: 270, Speed: 35},
	}

	w := interpolateLayers(1000, layers)
	if !w.Clamped || w.Direction != 240 || w.Speed != 15 {
		t.Errorf("below lowest level: got %+v", w)
	}

	w = interpolateLayers(15000, layers)
	if !w.Clamped || w.Direction != 270 || w.Speed != 35 {
		t.Errorf("above highest level: got %+v", w)
	}

	// Exactly at a forecast level is in range.
	if w = interpolateLayers(9000, layers); w.Clamped {
		t.Errorf("altitude at the top level reported clamping")
	}
}

func TestInterpolateLayersVariable(t *testing.T) {
	layers := []WindLayer{
		{Altitude: 3000, Variable: true},
		{Altitude: 9000, Direction: 270, Speed: 40},
	}

	// Interpolating up from a calm layer: speed blends in, direction
	// comes from the layer that has one.
	w := interpolateLayers(6000, layers)
	if w.Variable {
		t.Errorf("blend with one calm layer reported variable")
	}
	if w.Direction != 270 || w.Speed != 20 {
		t.Errorf("got %+v, expected 270 at 20", w)
	}
}
