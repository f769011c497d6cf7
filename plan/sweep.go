// plan/sweep.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plan

import (
	"github.com/brunoga/deep"
)

// AltitudePlan pairs one candidate cruising level with the fuel plan
// computed at it.
type AltitudePlan struct {
	Altitude float32
	Plan     *FuelPlan
	Err      error
}

// SweepAltitudes evaluates the fuel plan at every legal hemispheric
// level for the route's overall course between the minimum safe altitude
// and the aircraft's ceiling, so the pilot can compare levels. The
// prototype legs are deep-copied before each evaluation and never
// mutated. Returns ErrNoLegalAltitude if no level fits the envelope.
func (p *Planner) SweepAltitudes(legs []RouteLeg, startWeight float32, alternate *RouteLeg,
	course, minSafe float32, c HemisphericConfig) ([]AltitudePlan, error) {
	alts := LegalAltitudes(course, minSafe, p.Profile.Ceiling, c)
	if len(alts) == 0 {
		return nil, ErrNoLegalAltitude
	}

	var plans []AltitudePlan
	for _, alt := range alts {
		trial := deep.MustCopy(legs)
		for i := range trial {
			trial[i].Altitude = alt
		}
		var trialAlt *RouteLeg
		if alternate != nil {
			a := deep.MustCopy(*alternate)
			a.Altitude = alt
			trialAlt = &a
		}

		fp, err := p.Plan(trial, startWeight, trialAlt)
		plans = append(plans, AltitudePlan{Altitude: alt, Plan: fp, Err: err})
	}

	return plans, nil
}

// BestAltitude returns the swept level with the lowest block fuel among
// plans that computed successfully and fit in the tanks; if none fit,
// the lowest block fuel overall.
func BestAltitude(plans []AltitudePlan) (AltitudePlan, bool) {
	best, ok := AltitudePlan{}, false
	better := func(a, b AltitudePlan) bool {
		if a.Plan.FuelOK != b.Plan.FuelOK {
			return a.Plan.FuelOK
		}
		return a.Plan.BlockFuel < b.Plan.BlockFuel
	}
	for _, ap := range plans {
		if ap.Err != nil {
			continue
		}
		if !ok || better(ap, best) {
			best, ok = ap, true
		}
	}
	return best, ok
}
