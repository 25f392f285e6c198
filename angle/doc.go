// SPDX-License-Identifier: MIT

// Package angle holds the angular conventions shared by the ephemeris
// numeric primitives.
//
// The linear-algebra core (package linalg) consumes angles as plain float64
// radians. This package is the single source of truth for the canonical
// ranges those radians are folded into:
//
//   - azimuth φ ∈ [0, 2π)       (NormalizeAzimuth)
//   - elevation θ ∈ [−π/2, π/2] (InElevationRange, ClampElevation)
//
// It also provides unit conversion through a static radians-per-unit table
// (Unit, Convert) and sexagesimal forms for display and parsing (DMS, HMS).
//
// Quick example:
//
//	phi := angle.Convert(270, angle.Degree, angle.Radian)
//	d := angle.DMSFromRadians(phi)
//	fmt.Println(d) // +270°00′00.000″
package angle
