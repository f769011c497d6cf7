// plan/cruise.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plan

import (
	"github.com/mmp/preflight/math"
)

// HemisphericConfig holds the regulatory boundary conditions for the
// hemispherical cruising rule (FAR 91.159). They are configuration, not
// constants baked into the computation, so the rule's edge cases can be
// validated on their own.
type HemisphericConfig struct {
	// Below this altitude the +500' VFR offset is conventionally
	// omitted (the rule only applies more than 3000' AGL).
	TransitionAltitude float32

	// Minimum clearance of the level's thousands base above the minimum
	// safe altitude.
	MinSafeClearance float32
}

func DefaultHemisphericConfig() HemisphericConfig {
	return HemisphericConfig{
		TransitionAltitude: 3000,
		MinSafeClearance:   1000,
	}
}

// eastbound reports whether a true course gets odd-thousand cruising
// levels under the hemispherical rule.
func eastbound(course float32) bool {
	return math.NormalizeHeading(course) < 180
}

// firstBase returns the thousands base of the lowest
// hemispherically-correct level for the course that clears the minimum
// safe altitude.
func firstBase(course, minSafe float32, c HemisphericConfig) float32 {
	base := 1000 * math.Ceil((minSafe+c.MinSafeClearance)/1000)

	oddParity := eastbound(course)
	if odd := int(base/1000)%2 != 0; odd != oddParity {
		base += 1000
	}
	return base
}

// level applies the VFR +500' offset to a thousands base, except below
// the transition altitude where the offset is conventionally omitted.
func (c HemisphericConfig) level(base float32) float32 {
	if base >= c.TransitionAltitude {
		return base + 500
	}
	return base
}

// SelectCruiseAltitude applies the hemispherical rule: courses [0,179]
// get odd-thousand+500 levels, [180,359] even-thousand+500, choosing the
// lowest level whose thousands base clears the minimum safe altitude.
// Returns ErrNoLegalAltitude if that level is above the aircraft's
// ceiling.
func SelectCruiseAltitude(course, minSafe, ceiling float32, c HemisphericConfig) (float32, error) {
	alt := c.level(firstBase(course, minSafe, c))
	if alt > ceiling {
		return 0, ErrNoLegalAltitude
	}
	return alt, nil
}

// LegalAltitudes enumerates every legal cruising level for the course
// from the minimum safe altitude up to the ceiling, lowest first.
func LegalAltitudes(course, minSafe, ceiling float32, c HemisphericConfig) []float32 {
	var alts []float32
	for base := firstBase(course, minSafe, c); c.level(base) <= ceiling; base += 2000 {
		alts = append(alts, c.level(base))
	}
	return alts
}
