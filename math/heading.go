// math/heading.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// headings and directions

// Reduces it to [0,360).
func NormalizeHeading(h float32) float32 {
	if h < 0 {
		return 360 - NormalizeHeading(-h)
	}
	return Mod(h, 360)
}

func OppositeHeading(h float32) float32 {
	return NormalizeHeading(h + 180)
}

// HeadingDifference returns the minimum difference between two
// headings. (i.e., the result is always in the range [0,180].)
func HeadingDifference(a float32, b float32) float32 {
	var d float32
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HeadingSignedDifference returns the signed angular offset from heading a
// to heading b along the shorter arc, normalized to [-180,180]. A positive
// result means b is clockwise of a.
func HeadingSignedDifference(a float32, b float32) float32 {
	d := NormalizeHeading(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

// LerpHeading interpolates x of the way from heading a to heading b along
// the shorter arc, so that interpolating between 350 and 10 passes through
// 0 rather than 180. The result is normalized to [0,360).
func LerpHeading(x, a, b float32) float32 {
	return NormalizeHeading(a + x*HeadingSignedDifference(a, b))
}

// Heading2LL returns the true heading from the point |from| to the point
// |to|, where both are given in latitude-longitude coordinates.
func Heading2LL(from Point2LL, to Point2LL, nmPerLongitude float32) float32 {
	v := Point2LL{to[0] - from[0], to[1] - from[1]}

	// Note that atan2() normally measures w.r.t. the +x axis and angles
	// are positive for counter-clockwise. We want to measure w.r.t. +y and
	// to have positive angles be clockwise. Happily, swapping the order of
	// values passed to atan2()--passing (x,y), gives what we want.
	angle := Degrees(Atan2(v[0]*nmPerLongitude, v[1]*NMPerLatitude))
	return NormalizeHeading(angle)
}
