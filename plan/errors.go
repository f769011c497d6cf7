// plan/errors.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plan

import "errors"

var (
	ErrNoLegalAltitude        = errors.New("no legal cruise altitude within the aircraft's envelope")
	ErrWindExceedsPerformance = errors.New("wind exceeds aircraft performance; leg is unflyable")
	ErrInvalidLeg             = errors.New("invalid route leg")
)
