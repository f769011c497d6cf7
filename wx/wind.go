// wx/wind.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import (
	"fmt"

	"github.com/mmp/preflight/math"
)

// WindLayer is one forecast sample at a station: wind and temperature at
// a single altitude.
type WindLayer struct {
	Altitude    float32 // feet MSL
	Direction   float32 // degrees true; 0 with Variable set -> light and variable
	Speed       float32 // knots
	Temperature float32 // Celsius
	TempValid   bool    // the FD product omits temperatures at the lowest levels
	Variable    bool
}

// Wind is an interpolated wind report for a position and altitude.
type Wind struct {
	Direction   float32 // degrees true
	Speed       float32 // knots
	Temperature float32 // Celsius
	TempValid   bool
	Variable    bool
	Clamped     bool   // altitude was outside the forecast levels
	Station     string // the (nearest) station the report came from
}

func (w Wind) String() string {
	if w.Variable {
		return "VRB/LT"
	}
	s := fmt.Sprintf("%03.0f@%.0f", w.Direction, w.Speed)
	if w.TempValid {
		s += fmt.Sprintf(" %+.0fC", w.Temperature)
	}
	return s
}

// interpolateLayers returns the wind at the given altitude from a
// station's layers, which must be sorted by altitude. Speed and
// temperature interpolate linearly; direction interpolates along the
// shorter angular arc so that, e.g., halfway between 350 and 010 is 0
// rather than 180. Altitudes outside the forecast levels clamp to the
// nearest level and set Clamped.
func interpolateLayers(alt float32, layers []WindLayer) Wind {
	layerWind := func(l WindLayer, clamped bool) Wind {
		return Wind{
			Direction:   l.Direction,
			Speed:       l.Speed,
			Temperature: l.Temperature,
			TempValid:   l.TempValid,
			Variable:    l.Variable,
			Clamped:     clamped,
		}
	}

	if alt <= layers[0].Altitude {
		return layerWind(layers[0], alt < layers[0].Altitude)
	}
	if last := layers[len(layers)-1]; alt >= last.Altitude {
		return layerWind(last, alt > last.Altitude)
	}

	i := 0 // precondition: alt > layers[i].Altitude
	for i = range layers {
		if alt < layers[i].Altitude {
			break
		}
	}

	l0, l1 := layers[i-1], layers[i]
	t := (alt - l0.Altitude) / (l1.Altitude - l0.Altitude)

	w := Wind{Speed: math.Lerp(t, l0.Speed, l1.Speed)}
	switch {
	case l0.Variable && l1.Variable:
		w.Variable = true
	case l0.Variable:
		// A calm layer has no meaningful direction to interpolate from.
		w.Direction = l1.Direction
	case l1.Variable:
		w.Direction = l0.Direction
	default:
		w.Direction = math.LerpHeading(t, l0.Direction, l1.Direction)
	}

	if l0.TempValid && l1.TempValid {
		w.Temperature = math.Lerp(t, l0.Temperature, l1.Temperature)
		w.TempValid = true
	} else if l0.TempValid {
		w.Temperature = l0.Temperature
		w.TempValid = true
	} else if l1.TempValid {
		w.Temperature = l1.Temperature
		w.TempValid = true
	}

	return w
}
