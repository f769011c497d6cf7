// aviation/profile.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/mmp/preflight/util"
)

type FuelUnit string

const (
	FuelGallons = "gal" // piston/turboprop, gallons and GPH
	FuelPounds  = "lb"  // jets, pounds and PPH
)

// PhaseSpec gives the POH planning figures for a climb or descent phase.
type PhaseSpec struct {
	Rate     float32 `json:"rate"`     // ft/minute
	TAS      float32 `json:"tas"`      // knots
	FuelFlow float32 `json:"fuelFlow"` // per hour, in the profile's fuel unit
}

// AircraftProfile holds the static planning data for one aircraft type.
// Profiles are built once at load time from the embedded database and
// never mutated afterwards, so they are safe to share across concurrent
// planning sessions.
type AircraftProfile struct {
	ID   string `json:"-"` // database key, e.g. "C172"
	Name string `json:"name"`

	EmptyWeight    float32 `json:"emptyWeight"`    // pounds
	MaxGrossWeight float32 `json:"maxGrossWeight"` // pounds

	FuelCapacity float32  `json:"fuelCapacity"` // usable, in FuelUnit
	FuelUnit     FuelUnit `json:"fuelUnit"`
	FuelDensity  float32  `json:"fuelDensity,omitempty"` // lb/gal; unused for lb-based profiles

	TaxiFuel       float32 `json:"taxiFuel"`
	ReserveFuel    float32 `json:"reserveFuel"` // default reserve quantity
	ContingencyPct float32 `json:"contingencyPct"`

	Ceiling         float32 `json:"ceiling"`         // service ceiling, feet
	PreferredCruise float32 `json:"preferredCruise"` // feet

	Climb   PhaseSpec `json:"climb"`
	Descent PhaseSpec `json:"descent"`

	Table PerformanceTable `json:"table"`

	Tier   int    `json:"tier"` // 1: POH/AFM data, 2: published specs, 3: approximation
	Source string `json:"source"`
}

// FuelWeight returns the weight in pounds of the given fuel quantity
// expressed in the profile's fuel unit.
func (p *AircraftProfile) FuelWeight(amount float32) float32 {
	if p.FuelUnit == FuelPounds {
		return amount
	}
	return amount * p.FuelDensity
}

func (p *AircraftProfile) FuelUnitLabel() string {
	return util.Select(p.FuelUnit == FuelPounds, "lb/hr", "gal/hr")
}

func (p *AircraftProfile) Validate(e *util.ErrorLogger) {
	e.Push(p.ID)
	defer e.Pop()

	if p.Name == "" {
		e.ErrorString("no name given")
	}
	if p.FuelCapacity <= 0 {
		e.ErrorString("fuel capacity %f must be positive", p.FuelCapacity)
	}
	if p.FuelUnit != FuelGallons && p.FuelUnit != FuelPounds {
		e.ErrorString("fuel unit %q must be %q or %q", p.FuelUnit, FuelGallons, FuelPounds)
	}
	if p.FuelUnit == FuelGallons && p.FuelDensity <= 0 {
		e.ErrorString("gallon-based profile needs a positive fuel density, got %f", p.FuelDensity)
	}
	if p.Ceiling <= 0 {
		e.ErrorString("ceiling %f must be positive", p.Ceiling)
	}
	if p.EmptyWeight <= 0 || p.MaxGrossWeight <= p.EmptyWeight {
		e.ErrorString("implausible weights: empty %f, max gross %f", p.EmptyWeight, p.MaxGrossWeight)
	}
	for _, ph := range []struct {
		name string
		spec PhaseSpec
	}{{"climb", p.Climb}, {"descent", p.Descent}} {
		if ph.spec.Rate <= 0 || ph.spec.TAS <= 0 || ph.spec.FuelFlow <= 0 {
			e.ErrorString("%s phase figures must all be positive: %+v", ph.name, ph.spec)
		}
	}

	e.Push("performance table")
	p.Table.Validate(e)
	e.Pop()
}
