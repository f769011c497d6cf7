// aviation/errors.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"errors"
)

var (
	ErrInvalidTable    = errors.New("Performance table has fewer than two samples on a claimed axis")
	ErrInvalidQuery    = errors.New("Performance query value is not finite")
	ErrUnknownAircraft = errors.New("Unknown aircraft identifier")
)
