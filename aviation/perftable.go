// aviation/perftable.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/mmp/preflight/math"
	"github.com/mmp/preflight/util"
)

// PerfSample holds the published POH figures at one sample point of a
// performance table.
type PerfSample struct {
	TAS       float32 `json:"tas"`                 // knots
	FuelFlow  float32 `json:"fuelFlow"`            // per hour, in the profile's fuel unit
	ClimbRate float32 `json:"climbRate,omitempty"` // ft/minute; 0 if not published
}

// PerformanceTable holds one aircraft's POH cruise data as a sparse
// multi-axis grid. The altitude axis is always present; temperature and
// weight axes are optional and simply absent for aircraft whose POH
// doesn't publish them. All axes must be strictly increasing.
//
// Samples are stored flattened in altitude-major order: the sample for
// (alt i, temp j, weight k) is at index (i*nt+j)*nw+k where nt and nw are
// the temperature and weight axis sizes (1 when the axis is absent).
type PerformanceTable struct {
	Altitudes []float32 `json:"altitudes"`         // pressure altitude, feet
	Temps     []float32 `json:"temps,omitempty"`   // OAT, Celsius
	Weights   []float32 `json:"weights,omitempty"` // gross weight, pounds

	Samples []PerfSample `json:"samples"`
}

func (t *PerformanceTable) nTemps() int   { return max(1, len(t.Temps)) }
func (t *PerformanceTable) nWeights() int { return max(1, len(t.Weights)) }

func (t *PerformanceTable) sample(i, j, k int) PerfSample {
	return t.Samples[(i*t.nTemps()+j)*t.nWeights()+k]
}

// Validate checks the table's invariants, accumulating any problems in
// the provided ErrorLogger.
func (t *PerformanceTable) Validate(e *util.ErrorLogger) {
	checkAxis := func(name string, vals []float32, required bool) {
		if len(vals) == 0 {
			if required {
				e.ErrorString("%s axis is missing", name)
			}
			return
		}
		if len(vals) < 2 {
			e.ErrorString("%s axis has %d sample(s); at least two are needed to interpolate",
				name, len(vals))
		}
		for i := 1; i < len(vals); i++ {
			if vals[i] <= vals[i-1] {
				e.ErrorString("%s axis is not strictly increasing: %f then %f",
					name, vals[i-1], vals[i])
			}
		}
	}
	checkAxis("altitude", t.Altitudes, true)
	checkAxis("temperature", t.Temps, false)
	checkAxis("weight", t.Weights, false)

	if n := len(t.Altitudes) * t.nTemps() * t.nWeights(); len(t.Samples) != n {
		e.ErrorString("expected %d samples for the table's axes but found %d", n, len(t.Samples))
	}

	for i, s := range t.Samples {
		if s.TAS <= 0 {
			e.ErrorString("sample %d has non-positive TAS %f", i, s.TAS)
		}
		if s.FuelFlow <= 0 {
			e.ErrorString("sample %d has non-positive fuel flow %f", i, s.FuelFlow)
		}
	}
}

// bracket returns the index of the lower bracketing sample for q on the
// given axis, the interpolation parameter t in [0,1] between it and the
// next sample, and whether q was outside the sampled range and clamped to
// the edge. Single-point axes are treated as no-op axes.
func bracket(vals []float32, q float32) (int, float32, bool) {
	if len(vals) <= 1 {
		return 0, 0, false
	}
	if q <= vals[0] {
		return 0, 0, q < vals[0]
	}
	if q >= vals[len(vals)-1] {
		return len(vals) - 2, 1, q > vals[len(vals)-1]
	}

	i := 0 // precondition: q > vals[i]
	for i = range vals {
		if q < vals[i] {
			break
		}
	}
	return i - 1, (q - vals[i-1]) / (vals[i] - vals[i-1]), false
}

func lerpSample(x float32, s0, s1 PerfSample) PerfSample {
	return PerfSample{
		TAS:       math.Lerp(x, s0.TAS, s1.TAS),
		FuelFlow:  math.Lerp(x, s0.FuelFlow, s1.FuelFlow),
		ClimbRate: math.Lerp(x, s0.ClimbRate, s1.ClimbRate),
	}
}

// Lookup interpolates the table at the given pressure altitude,
// temperature, and weight. Temperature and weight are ignored for tables
// that don't carry those axes. Queries outside the sampled range clamp to
// the nearest edge--the POH doesn't say anything about performance
// outside the tested envelope and extrapolating would invent numbers--and
// the returned Boolean reports whether clamping happened so that callers
// can surface a caveat.
//
// Interpolation is linear per axis, applied altitude first, then
// temperature, then weight, so results are reproducible regardless of
// how the table was assembled.
func (t *PerformanceTable) Lookup(alt, temp, weight float32) (PerfSample, bool, error) {
	if math.IsNaN(alt) || math.IsInf(alt) {
		return PerfSample{}, false, ErrInvalidQuery
	}
	if len(t.Altitudes) < 2 ||
		(len(t.Temps) == 1) || (len(t.Weights) == 1) {
		return PerfSample{}, false, ErrInvalidTable
	}

	ia, ta, ca := bracket(t.Altitudes, alt)
	it, tt, ct := bracket(t.Temps, temp)
	iw, tw, cw := bracket(t.Weights, weight)

	// Collapse one axis at a time: altitude, then temperature, then
	// weight.
	alongAlt := func(j, k int) PerfSample {
		if len(t.Altitudes) == 1 {
			return t.sample(0, j, k)
		}
		return lerpSample(ta, t.sample(ia, j, k), t.sample(ia+1, j, k))
	}
	alongTemp := func(k int) PerfSample {
		if len(t.Temps) == 0 {
			return alongAlt(0, k)
		}
		return lerpSample(tt, alongAlt(it, k), alongAlt(it+1, k))
	}
	var s PerfSample
	if len(t.Weights) == 0 {
		s = alongTemp(0)
	} else {
		s = lerpSample(tw, alongTemp(iw), alongTemp(iw+1))
	}

	return s, ca || ct || cw, nil
}
