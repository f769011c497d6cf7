// math/latlong.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

const NMPerLatitude = 60

const NauticalMilesToFeet = 6076.12
const FeetToNauticalMiles = 1 / NauticalMilesToFeet

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 {
	return p[0]
}

func (p Point2LL) Latitude() float32 {
	return p[1]
}

// DDString returns the position in decimal degrees, e.g.:
// (39.860901, -75.274864)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

func Mid2LL(a Point2LL, b Point2LL) Point2LL {
	return Point2LL{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// NMPerLongitudeAt returns the number of nautical miles per degree of
// longitude at the latitude of the given point. (This is 60 at the
// equator, scaling down by the cosine of the latitude as one moves toward
// the poles.)
func NMPerLongitudeAt(p Point2LL) float32 {
	return NMPerLatitude * Cos(Radians(p[1]))
}

// NMDistance2LL returns the distance in nautical miles between two
// provided lat-long coordinates.
func NMDistance2LL(a Point2LL, b Point2LL) float32 {
	// https://www.movable-type.co.uk/scripts/latlong.html
	const R = 6371000 // metres
	rad := func(d float64) float64 { return float64(d) / 180 * gomath.Pi }
	lat1, lon1 := rad(float64(a[1])), rad(float64(a[0]))
	lat2, lon2 := rad(float64(b[1])), rad(float64(b[0]))
	dlat, dlon := lat2-lat1, lon2-lon1

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*Sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	dm := R * c // in metres

	return float32(dm * 0.000539957)
}

// NMDistance2LLFast returns a cheap approximation of the distance in
// nautical miles between two lat-long coordinates, using a local
// flat-earth approximation scaled by nmPerLongitude. Suitable for
// comparing distances over the scale of a forecast-station grid.
func NMDistance2LLFast(a Point2LL, b Point2LL, nmPerLongitude float32) float32 {
	x := (a[0] - b[0]) * nmPerLongitude
	y := (a[1] - b[1]) * NMPerLatitude
	return Sqrt(Sqr(x) + Sqr(y))
}
