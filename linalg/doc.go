// SPDX-License-Identifier: MIT

// Package linalg is the coordinate-system-polymorphic vector algebra and
// 3×3 matrix engine of the ephemeris primitives.
//
// Three representations of a point in space are supported:
//
//	Cartesian    (x, y, z)        unrestricted reals
//	Cylindrical  (ρ, φ, z)        ρ ≥ 0, φ ∈ [0, 2π)
//	Spherical    (r, φ, θ)        r ≥ 0, φ ∈ [0, 2π), θ ∈ [−π/2, π/2]
//
// The package offers two vector forms with deliberately different contracts:
//
//   - FrameVector[F]: a low-level value whose frame is fixed at compile time
//     by a zero-sized tag (Cartesian, Cylindrical, Spherical). Constructors
//     CANONICALIZE out-of-domain input (negative radius folds into φ+π).
//     Arithmetic runs natively in the frame.
//   - Vector3D: a runtime-tagged union used wherever frames change
//     dynamically. Cylindrical/spherical constructors REJECT out-of-domain
//     input with an *InvalidAttributeError. Binary arithmetic collapses to a
//     Cartesian result; the *Assign family re-tags the result back into the
//     receiver's original frame.
//
// Mat3D is a dense row-major 3×3 matrix acting as a linear operator on
// Vector3D, with determinant, adjugate inverse, elementary rotations and
// wrap-around row/column access.
//
// Errors:
//   - ErrZeroDivision, ErrSingularMatrix, ErrInvalidAttribute, ErrConversion,
//     ErrDimensionMismatch (see errors.go). Exact comparisons are used for
//     zero divisors and zero determinants; there is no tolerance.
//
// Concurrency:
//   - All types are plain values with no shared state; copies may be used
//     from any goroutine without synchronization.
//
// Quick example:
//
//	star, _ := linalg.FromSpherical(1, ra, dec)
//	rot := linalg.RotZ(-lst)
//	local := rot.MulVec(star).ToSpherical()
package linalg
