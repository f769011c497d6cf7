// wx/errors.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import "errors"

var (
	ErrNoWindData      = errors.New("no winds aloft data available")
	ErrUnknownStation  = errors.New("unknown winds aloft station")
	ErrFetchFailed     = errors.New("winds aloft fetch failed")
	ErrMalformedFDText = errors.New("malformed FD winds aloft text")
)
