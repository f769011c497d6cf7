// aviation/atmos.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

// ISATemperature returns the standard atmosphere temperature in Celsius
// at the given altitude in feet, used as the fallback when no forecast
// temperature is available for a performance lookup.
func ISATemperature(alt float32) float32 {
	altMeters := alt * 0.3048

	// Temperature decreasing linearly with altitude
	const seaLevelTempC = 15.0 // ISA temperature in C
	const lapseRate = -0.0065  // lapse rate in troposphere: -6.5°C per 1000m
	return seaLevelTempC + lapseRate*altMeters
}
