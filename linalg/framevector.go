// SPDX-License-Identifier: MIT

// Package linalg - FrameVector: a 3-component vector whose frame is fixed at
// compile time.
//
// Purpose:
//   - Store three float64 components plus a phantom frame tag F.
//   - Keep each frame's invariant from construction on (see frame.go).
//   - Run negate/scale/divide/norm natively in the frame, never by a
//     round trip through Cartesian.
//
// Contract:
//   - Constructors CANONICALIZE; they never fail. Contrast with Vector3D,
//     whose cylindrical/spherical constructors reject bad input.
//
// Complexity quicksheet:
//   - every operation is O(1) and allocation-free.

package linalg

import "fmt"

// FrameVector is a point in the frame selected by F.
// The zero value is the origin.
type FrameVector[F Frame] struct {
	c [3]float64
}

// Instantiated aliases for readability at call sites.
type (
	CartesianVector   = FrameVector[Cartesian]
	CylindricalVector = FrameVector[Cylindrical]
	SphericalVector   = FrameVector[Spherical]
)

// Zero returns the origin in frame F.
func Zero[F Frame]() FrameVector[F] { return FrameVector[F]{} }

// Filled returns a vector with all three components set to value, passed
// through the frame's canonicalization. That is a no-op whenever value
// already satisfies the frame invariant (e.g. 0, or any value in Cartesian).
func Filled[F Frame](value float64) FrameVector[F] {
	var f F

	return FrameVector[F]{c: f.canonical([3]float64{value, value, value})}
}

// NewCartesian returns (x, y, z).
func NewCartesian(x, y, z float64) CartesianVector {
	return CartesianVector{c: [3]float64{x, y, z}}
}

// NewCylindrical returns (ρ, φ, z) canonicalized: a negative ρ is negated
// and φ advanced by π; φ is folded into [0, 2π).
func NewCylindrical(rho, phi, z float64) CylindricalVector {
	return CylindricalVector{c: Cylindrical{}.canonical([3]float64{rho, phi, z})}
}

// NewSpherical returns (r, φ, θ) canonicalized: a negative r is negated,
// θ negated and φ advanced by π; θ is then clamped to [−π/2, π/2] and φ
// folded into [0, 2π).
func NewSpherical(r, phi, theta float64) SphericalVector {
	return SphericalVector{c: Spherical{}.canonical([3]float64{r, phi, theta})}
}

// Kind returns the runtime discriminant of F.
func (v FrameVector[F]) Kind() Kind {
	var f F

	return f.kind()
}

// Component returns component i (0, 1 or 2).
// ok is false for any other index; this is not an error.
func (v FrameVector[F]) Component(i int) (value float64, ok bool) {
	if i < 0 || i >= len(v.c) {
		return 0, false
	}

	return v.c[i], true
}

// Components returns a copy of the three raw components.
func (v FrameVector[F]) Components() [3]float64 { return v.c }

// Neg returns the opposite point, computed natively in F.
func (v FrameVector[F]) Neg() FrameVector[F] { return v.Scale(-1) }

// Scale returns k·v computed natively in F.
func (v FrameVector[F]) Scale(k float64) FrameVector[F] {
	var f F

	return FrameVector[F]{c: f.scale(v.c, k)}
}

// Div returns v/k computed natively in F.
// Returns ErrZeroDivision if k is exactly 0.
func (v FrameVector[F]) Div(k float64) (FrameVector[F], error) {
	if k == 0 {
		return FrameVector[F]{}, linalgErrorf(opFrameDiv, ErrZeroDivision)
	}
	var f F

	return FrameVector[F]{c: f.div(v.c, k)}, nil
}

// Norm returns the Euclidean length using the frame's native formula.
func (v FrameVector[F]) Norm() float64 {
	var f F

	return f.norm(v.c)
}

// Vector3D lifts v into the runtime-tagged union, keeping its frame.
// Invariants already hold, so no validation happens.
func (v FrameVector[F]) Vector3D() Vector3D {
	return Vector3D{kind: v.Kind(), c: v.c}
}

// String renders the frame name and components.
func (v FrameVector[F]) String() string {
	return fmt.Sprintf("%s%v", v.Kind(), v.c)
}

// MulScalar returns k·v; the scalar-first spelling of v.Scale(k).
func MulScalar[F Frame](k float64, v FrameVector[F]) FrameVector[F] { return v.Scale(k) }

// Convert re-expresses v in frame To using the direct route From→To.
func Convert[To, From Frame](v FrameVector[From]) FrameVector[To] {
	var to To

	return FrameVector[To]{c: convertCoords(v.Kind(), to.kind(), v.c)}
}

// ---------- Named routes (the six directed pairs) ----------

// CylindricalFromCartesian: ρ = hypot(x,y), φ = atan2(y,x) (0 on the z axis), z = z.
func CylindricalFromCartesian(v CartesianVector) CylindricalVector {
	return CylindricalVector{c: cartesianToCylindrical(v.c)}
}

// SphericalFromCartesian: r = |v|, φ as above, θ = atan2(z, ρ) (0 at the origin).
func SphericalFromCartesian(v CartesianVector) SphericalVector {
	return SphericalVector{c: cartesianToSpherical(v.c)}
}

// CartesianFromCylindrical: x = ρcosφ, y = ρsinφ, z = z.
func CartesianFromCylindrical(v CylindricalVector) CartesianVector {
	return CartesianVector{c: cylindricalToCartesian(v.c)}
}

// SphericalFromCylindrical: r = hypot(ρ,z), θ = atan2(z,ρ), φ unchanged.
func SphericalFromCylindrical(v CylindricalVector) SphericalVector {
	return SphericalVector{c: cylindricalToSpherical(v.c)}
}

// CartesianFromSpherical: ρ = r·cosθ, x = ρcosφ, y = ρsinφ, z = r·sinθ.
func CartesianFromSpherical(v SphericalVector) CartesianVector {
	return CartesianVector{c: sphericalToCartesian(v.c)}
}

// CylindricalFromSpherical: ρ = r·cosθ, z = r·sinθ, φ unchanged.
func CylindricalFromSpherical(v SphericalVector) CylindricalVector {
	return CylindricalVector{c: sphericalToCylindrical(v.c)}
}

// ---------- Frame-named readers ----------

// XYZ returns the Cartesian components.
func XYZ(v CartesianVector) (x, y, z float64) { return v.c[0], v.c[1], v.c[2] }

// RhoPhiZ returns the cylindrical components.
func RhoPhiZ(v CylindricalVector) (rho, phi, z float64) { return v.c[0], v.c[1], v.c[2] }

// RPhiTheta returns the spherical components.
func RPhiTheta(v SphericalVector) (r, phi, theta float64) { return v.c[0], v.c[1], v.c[2] }
