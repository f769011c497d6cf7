// pln/pln.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package pln writes MSFS-compatible .pln flight plan files, the AceXML
// format the simulator's world map loads.
package pln

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/mmp/preflight/math"
	"github.com/mmp/preflight/util"
)

// Waypoint is one fix in an exported plan.
type Waypoint struct {
	Ident     string
	Type      string // "Airport" or "User"
	Region    string // ICAO region prefix, e.g. "K"
	Name      string
	Location  math.Point2LL
	Elevation float32 // feet MSL
	Comment   string
}

// Plan is the route to export.
type Plan struct {
	Rules          string // "VFR" or "IFR"
	CruiseAltitude float32
	Departure      Waypoint
	Destination    Waypoint
	Enroute        []Waypoint
	Alternate      *Waypoint // appended after the destination; MSFS has no native field
	Description    string
}

type xmlICAO struct {
	Ident  string `xml:"ICAOIdent"`
	Region string `xml:"ICAORegion"`
}

type xmlWaypoint struct {
	XMLName       xml.Name `xml:"ATCWaypoint"`
	ID            string   `xml:"id,attr"`
	Type          string   `xml:"ATCWaypointType"`
	WorldPosition string   `xml:"WorldPosition"`
	SpeedMaxFP    string   `xml:"SpeedMaxFP"`
	Comment       string   `xml:"ATCComment,omitempty"`
	ICAO          xmlICAO  `xml:"ICAO"`
}

type xmlFlightPlan struct {
	XMLName        xml.Name `xml:"FlightPlan.FlightPlan"`
	Title          string   `xml:"Title"`
	FPType         string   `xml:"FPType"`
	RouteType      string   `xml:"RouteType"`
	CruisingAlt    string   `xml:"CruisingAlt"`
	DepartureID    string   `xml:"DepartureID"`
	DepartureLLA   string   `xml:"DepartureLLA"`
	DestinationID  string   `xml:"DestinationID"`
	DestinationLLA string   `xml:"DestinationLLA"`
	Descr          string   `xml:"Descr"`
	DepartureName  string   `xml:"DepartureName"`
	DestName       string   `xml:"DestinationName"`
	AppVersion     string   `xml:"AppVersion"`

	Waypoints []xmlWaypoint
}

type xmlDocument struct {
	XMLName    xml.Name `xml:"SimBase.Document"`
	Type       string   `xml:"Type,attr"`
	Version    string   `xml:"version,attr"`
	Descr      string   `xml:"Descr"`
	FlightPlan xmlFlightPlan
}

// LLA formats a position and elevation the way MSFS expects:
// N47° 27.72',W122° 18.60',+433.00
func LLA(p math.Point2LL, elev float32) string {
	hemi := func(v float32, pos, neg string) (string, float32) {
		return util.Select(v >= 0, pos, neg), math.Abs(v)
	}
	latH, lat := hemi(p.Latitude(), "N", "S")
	lonH, lon := hemi(p.Longitude(), "E", "W")

	return fmt.Sprintf("%s%d° %.2f',%s%d° %.2f',+%.2f",
		latH, int(lat), 60*(lat-math.Floor(lat)),
		lonH, int(lon), 60*(lon-math.Floor(lon)),
		elev)
}

func makeWaypoint(wp Waypoint) xmlWaypoint {
	return xmlWaypoint{
		ID:            wp.Ident,
		Type:          util.Select(wp.Type != "", wp.Type, "User"),
		WorldPosition: LLA(wp.Location, wp.Elevation),
		SpeedMaxFP:    "-1",
		Comment:       wp.Comment,
		ICAO:          xmlICAO{Ident: wp.Ident, Region: wp.Region},
	}
}

// Export writes the plan as a .pln document.
func Export(w io.Writer, p Plan) error {
	fp := xmlFlightPlan{
		Title:          p.Departure.Ident + " to " + p.Destination.Ident,
		FPType:         util.Select(p.Rules != "", p.Rules, "VFR"),
		RouteType:      util.Select(p.CruiseAltitude >= 18000, "HighAlt", "LowAlt"),
		CruisingAlt:    fmt.Sprintf("%.0f", p.CruiseAltitude),
		DepartureID:    p.Departure.Ident,
		DepartureLLA:   LLA(p.Departure.Location, p.Departure.Elevation),
		DestinationID:  p.Destination.Ident,
		DestinationLLA: LLA(p.Destination.Location, p.Destination.Elevation),
		Descr:          p.Description,
		DepartureName:  util.Select(p.Departure.Name != "", p.Departure.Name, p.Departure.Ident),
		DestName:       util.Select(p.Destination.Name != "", p.Destination.Name, p.Destination.Ident),
		AppVersion:     "11,1,282174,0",
	}

	fp.Waypoints = append(fp.Waypoints, makeWaypoint(p.Departure))
	for _, wp := range p.Enroute {
		fp.Waypoints = append(fp.Waypoints, makeWaypoint(wp))
	}
	fp.Waypoints = append(fp.Waypoints, makeWaypoint(p.Destination))
	if p.Alternate != nil {
		alt := *p.Alternate
		alt.Comment = "ALTERNATE: " + alt.Ident
		fp.Waypoints = append(fp.Waypoints, makeWaypoint(alt))
	}

	doc := xmlDocument{
		Type:       "AceXML",
		Version:    "1,0",
		Descr:      "AceXML Document",
		FlightPlan: fp,
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
