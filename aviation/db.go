// aviation/db.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	_ "embed"
	"encoding/json"
	"maps"
	"slices"

	"github.com/mmp/preflight/util"
)

var DB *StaticDatabase

///////////////////////////////////////////////////////////////////////////
// StaticDatabase

// StaticDatabase holds the aircraft performance profiles that are
// embedded in the binary. It is initialized once at startup via InitDB
// and is strictly read-only thereafter.
type StaticDatabase struct {
	Aircraft map[string]*AircraftProfile
}

//go:embed aircraft.json
var aircraftJSON []byte

func InitDB() {
	var e util.ErrorLogger
	db := &StaticDatabase{Aircraft: parseAircraft(&e)}
	if e.HaveErrors() {
		e.PrintErrors(nil)
		panic("embedded aircraft database is invalid")
	}
	DB = db
}

func parseAircraft(e *util.ErrorLogger) map[string]*AircraftProfile {
	e.Push("aircraft.json")
	defer e.Pop()

	var aircraft map[string]*AircraftProfile
	if err := json.Unmarshal(aircraftJSON, &aircraft); err != nil {
		e.Error(err)
		return nil
	}

	for id, profile := range aircraft {
		profile.ID = id
		profile.Validate(e)
	}
	return aircraft
}

// Profile returns the performance profile for the given aircraft
// identifier (e.g. "C172").
func (db *StaticDatabase) Profile(id string) (*AircraftProfile, error) {
	profile, ok := db.Aircraft[id]
	if !ok {
		return nil, ErrUnknownAircraft
	}
	return profile, nil
}

// AircraftIDs returns the identifiers of all known aircraft, sorted.
func (db *StaticDatabase) AircraftIDs() []string {
	return slices.Sorted(maps.Keys(db.Aircraft))
}
