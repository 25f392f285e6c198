// SPDX-License-Identifier: MIT

// Package angle - canonical range folding for azimuth and elevation.
//
// Determinism:
//   - Pure functions; math.Mod based folding, no iteration.

package angle

import "math"

const (
	// TwoPi is a full revolution in radians.
	TwoPi = 2 * math.Pi

	// HalfPi is the elevation bound in radians.
	HalfPi = math.Pi / 2
)

// NormalizeAzimuth folds phi into [0, 2π).
// A value that rounds to exactly 2π after folding (tiny negative inputs)
// maps to 0 so the half-open upper bound always holds.
// NaN and ±Inf propagate as NaN.
func NormalizeAzimuth(phi float64) float64 {
	phi = math.Mod(phi, TwoPi)
	if phi < 0 {
		phi += TwoPi
	}
	if phi >= TwoPi {
		return 0
	}

	return phi
}

// InElevationRange reports whether theta lies in [−π/2, π/2].
// NaN is never in range.
func InElevationRange(theta float64) bool {
	return theta >= -HalfPi && theta <= HalfPi
}

// ClampElevation clamps theta into [−π/2, π/2].
func ClampElevation(theta float64) float64 {
	return math.Max(-HalfPi, math.Min(HalfPi, theta))
}
