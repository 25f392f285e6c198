// Package ephemeris is a small library of astronomical numeric primitives.
//
// 🚀 What is inside?
//
//	angle/   canonical azimuth/elevation ranges, unit table, DMS/HMS forms
//	linalg/  frame-tagged vectors (Cartesian, cylindrical, spherical),
//	         the Vector3D tagged union and the Mat3D 3×3 matrix engine
//
// ✨ Guarantees
//
//   - Pure values – no shared state, no locks, no I/O
//   - Explicit errors – sentinels matched with errors.Is; no panics on input
//   - Exact contracts – zero divisors and zero determinants are detected by
//     exact comparison, never by tolerance
//
// Quick example:
//
//	star, _ := linalg.Unit(ra, dec)
//	local := linalg.RotZ(-lst).MulVec(star).ToSpherical()
//
// See examples/ for a runnable equatorial→horizon rotation.
//
//	go get github.com/new-divos/ephemeris-sub000
package ephemeris
