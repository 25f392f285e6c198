// SPDX-License-Identifier: MIT

// Package linalg - Vector3D: runtime-tagged union over the three frame records.
//
// Purpose:
//   - Hold a point in whichever frame is natural for the caller and convert
//     between frames on demand.
//   - Validate cylindrical/spherical input at construction: out-of-domain
//     radius or elevation is REJECTED with *InvalidAttributeError, never
//     clamped. Azimuth is always folded into [0, 2π).
//
// Frame transitions always produce a new value (ToCartesian, ToCylindrical,
// ToSpherical). The only in-place transitions are the *Assign methods in
// vector3d_ops.go.

package linalg

import (
	"fmt"
	"math"

	"github.com/new-divos/ephemeris-sub000/angle"
)

// CartesianRecord is the plain (x, y, z) form of a Vector3D.
type CartesianRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// CylindricalRecord is the plain (ρ, φ, z) form of a Vector3D.
type CylindricalRecord struct {
	Rho float64 `json:"rho"`
	Phi float64 `json:"phi"`
	Z   float64 `json:"z"`
}

// SphericalRecord is the plain (r, φ, θ) form of a Vector3D.
type SphericalRecord struct {
	R     float64 `json:"r"`
	Phi   float64 `json:"phi"`
	Theta float64 `json:"theta"`
}

// Vector builds the Cartesian Vector3D for r.
func (r CartesianRecord) Vector() Vector3D { return FromCartesian(r.X, r.Y, r.Z) }

// Vector validates r and builds the cylindrical Vector3D.
func (r CylindricalRecord) Vector() (Vector3D, error) { return FromCylindrical(r.Rho, r.Phi, r.Z) }

// Vector validates r and builds the spherical Vector3D.
func (r SphericalRecord) Vector() (Vector3D, error) { return FromSpherical(r.R, r.Phi, r.Theta) }

// Vector3D is a point tagged with the frame it is stored in.
// The zero value is the Cartesian origin.
type Vector3D struct {
	kind Kind       // active record
	c    [3]float64 // components of the active record, in record field order
}

// FromCartesian returns the Cartesian vector (x, y, z). Always succeeds.
func FromCartesian(x, y, z float64) Vector3D {
	return Vector3D{kind: KindCartesian, c: [3]float64{x, y, z}}
}

// FromCylindrical returns the cylindrical vector (ρ, φ, z).
// Returns *InvalidAttributeError (ErrInvalidAttribute) for ρ < 0 or NaN.
func FromCylindrical(rho, phi, z float64) (Vector3D, error) {
	if !(rho >= 0) {
		return Vector3D{}, linalgErrorf(opFromCylindrical, &InvalidAttributeError{Attribute: AttrRho, Value: rho})
	}

	return Vector3D{kind: KindCylindrical, c: [3]float64{rho, angle.NormalizeAzimuth(phi), z}}, nil
}

// FromSpherical returns the spherical vector (r, φ, θ).
// Returns *InvalidAttributeError (ErrInvalidAttribute) for r < 0, or for θ
// outside [−π/2, π/2]; NaN fails either check.
func FromSpherical(r, phi, theta float64) (Vector3D, error) {
	v, err := newSpherical(r, phi, theta)
	if err != nil {
		return Vector3D{}, linalgErrorf(opFromSpherical, err)
	}

	return v, nil
}

// Unit returns the unit-length spherical vector pointing at (φ, θ).
// Returns *InvalidAttributeError for θ outside [−π/2, π/2].
func Unit(phi, theta float64) (Vector3D, error) {
	v, err := newSpherical(1, phi, theta)
	if err != nil {
		return Vector3D{}, linalgErrorf(opUnit, err)
	}

	return v, nil
}

func newSpherical(r, phi, theta float64) (Vector3D, error) {
	if !(r >= 0) {
		return Vector3D{}, &InvalidAttributeError{Attribute: AttrRadius, Value: r}
	}
	if !angle.InElevationRange(theta) {
		return Vector3D{}, &InvalidAttributeError{Attribute: AttrTheta, Value: theta}
	}

	return Vector3D{kind: KindSpherical, c: [3]float64{r, angle.NormalizeAzimuth(phi), theta}}, nil
}

// Kind returns the frame v is stored in.
func (v Vector3D) Kind() Kind { return v.kind }

// IsCartesian reports whether v is stored in the Cartesian frame.
func (v Vector3D) IsCartesian() bool { return v.kind == KindCartesian }

// IsCylindrical reports whether v is stored in the cylindrical frame.
func (v Vector3D) IsCylindrical() bool { return v.kind == KindCylindrical }

// IsSpherical reports whether v is stored in the spherical frame.
func (v Vector3D) IsSpherical() bool { return v.kind == KindSpherical }

// To returns the same point stored in frame k. Always succeeds.
func (v Vector3D) To(k Kind) Vector3D {
	return Vector3D{kind: k, c: convertCoords(v.kind, k, v.c)}
}

// ToCartesian returns the same point in the Cartesian frame.
func (v Vector3D) ToCartesian() Vector3D { return v.To(KindCartesian) }

// ToCylindrical returns the same point in the cylindrical frame.
func (v Vector3D) ToCylindrical() Vector3D { return v.To(KindCylindrical) }

// ToSpherical returns the same point in the spherical frame.
func (v Vector3D) ToSpherical() Vector3D { return v.To(KindSpherical) }

// Cartesian returns the Cartesian record of v, converting if needed.
func (v Vector3D) Cartesian() CartesianRecord {
	c := convertCoords(v.kind, KindCartesian, v.c)

	return CartesianRecord{X: c[0], Y: c[1], Z: c[2]}
}

// Cylindrical returns the cylindrical record of v, converting if needed.
func (v Vector3D) Cylindrical() CylindricalRecord {
	c := convertCoords(v.kind, KindCylindrical, v.c)

	return CylindricalRecord{Rho: c[0], Phi: c[1], Z: c[2]}
}

// Spherical returns the spherical record of v, converting if needed.
func (v Vector3D) Spherical() SphericalRecord {
	c := convertCoords(v.kind, KindSpherical, v.c)

	return SphericalRecord{R: c[0], Phi: c[1], Theta: c[2]}
}

// Components returns the stored components in record order.
func (v Vector3D) Components() [3]float64 { return v.c }

// CartesianVector returns v as a Cartesian FrameVector.
func (v Vector3D) CartesianVector() CartesianVector {
	return CartesianVector{c: convertCoords(v.kind, KindCartesian, v.c)}
}

// Norm returns the Euclidean length using the stored frame's native formula.
func (v Vector3D) Norm() float64 {
	switch v.kind {
	case KindCylindrical:
		return math.Hypot(v.c[0], v.c[2])
	case KindSpherical:
		return v.c[0]
	default:
		return math.Hypot(math.Hypot(v.c[0], v.c[1]), v.c[2])
	}
}

// ApproxEqual reports whether v and o describe the same point within the
// configured tolerance, comparing Cartesian projections component-wise.
func (v Vector3D) ApproxEqual(o Vector3D, opts ...Option) bool {
	cfg := gatherOptions(opts...)
	a := convertCoords(v.kind, KindCartesian, v.c)
	b := convertCoords(o.kind, KindCartesian, o.c)
	for i := range a {
		if !cfg.close(a[i], b[i]) {
			return false
		}
	}

	return true
}

// String renders the frame and named components, e.g.
// "Spherical(r=1, phi=0.5, theta=0)".
func (v Vector3D) String() string {
	switch v.kind {
	case KindCylindrical:
		return fmt.Sprintf("Cylindrical(rho=%g, phi=%g, z=%g)", v.c[0], v.c[1], v.c[2])
	case KindSpherical:
		return fmt.Sprintf("Spherical(r=%g, phi=%g, theta=%g)", v.c[0], v.c[1], v.c[2])
	default:
		return fmt.Sprintf("Cartesian(x=%g, y=%g, z=%g)", v.c[0], v.c[1], v.c[2])
	}
}
