// cmd/preflight/config.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/mmp/preflight/math"
	"github.com/mmp/preflight/plan"
	"gopkg.in/yaml.v3"
)

// Config is the YAML route file the user hands us.
type Config struct {
	Aircraft        string  `yaml:"aircraft"`
	Rules           string  `yaml:"rules,omitempty"` // "VFR" (default) or "IFR"
	StartWeight     float32 `yaml:"startWeight,omitempty"`
	ReserveMinutes  float32 `yaml:"reserveMinutes,omitempty"`
	CruiseAltitude  float32 `yaml:"cruiseAltitude,omitempty"` // 0: pick hemispherically
	MinSafeAltitude float32 `yaml:"minSafeAltitude,omitempty"`

	Route     []ConfigWaypoint `yaml:"route"`
	Alternate *ConfigWaypoint  `yaml:"alternate,omitempty"`
}

type ConfigWaypoint struct {
	Ident     string  `yaml:"ident"`
	Lat       float32 `yaml:"lat"`
	Lon       float32 `yaml:"lon"`
	Elevation float32 `yaml:"elevation,omitempty"`
}

func (w ConfigWaypoint) waypoint() plan.Waypoint {
	return plan.Waypoint{
		Ident:     w.Ident,
		Location:  math.Point2LL{w.Lon, w.Lat},
		Elevation: w.Elevation,
	}
}

func LoadConfig(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if cfg.Aircraft == "" {
		return cfg, fmt.Errorf("no aircraft type given")
	}
	if len(cfg.Route) < 2 {
		return cfg, fmt.Errorf("route needs at least two waypoints, got %d", len(cfg.Route))
	}
	for i, wp := range cfg.Route {
		if err := wp.validate(); err != nil {
			return cfg, fmt.Errorf("route waypoint %d: %w", i, err)
		}
	}
	if cfg.Alternate != nil {
		if err := cfg.Alternate.validate(); err != nil {
			return cfg, fmt.Errorf("alternate: %w", err)
		}
	}
	return cfg, nil
}

func (w ConfigWaypoint) validate() error {
	if w.Ident == "" {
		return fmt.Errorf("no ident given")
	}
	if w.Lat < -90 || w.Lat > 90 || w.Lon < -180 || w.Lon > 180 {
		return fmt.Errorf("%s: implausible position %v, %v", w.Ident, w.Lat, w.Lon)
	}
	return nil
}
