// SPDX-License-Identifier: MIT

// Package linalg - frame tags and the runtime frame discriminant.
//
// Purpose:
//   - Cartesian, Cylindrical and Spherical are zero-sized tags. As type
//     arguments of FrameVector they select per-frame behavior statically.
//   - Kind is the runtime discriminant used by Vector3D.
//
// Notes:
//   - The Frame constraint is sealed: its union lists exactly the three tags,
//     and its methods are unexported, so no foreign frame can be added.

package linalg

import (
	"fmt"
	"math"

	"github.com/new-divos/ephemeris-sub000/angle"
)

// Kind identifies a coordinate frame at runtime. The zero value is
// KindCartesian.
type Kind uint8

const (
	KindCartesian Kind = iota
	KindCylindrical
	KindSpherical
)

// String returns the frame name.
func (k Kind) String() string {
	switch k {
	case KindCartesian:
		return "Cartesian"
	case KindCylindrical:
		return "Cylindrical"
	case KindSpherical:
		return "Spherical"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Cartesian tags (x, y, z) storage. No constraint on components.
type Cartesian struct{}

// Cylindrical tags (ρ, φ, z) storage with ρ ≥ 0 and φ ∈ [0, 2π).
type Cylindrical struct{}

// Spherical tags (r, φ, θ) storage with r ≥ 0, φ ∈ [0, 2π), θ ∈ [−π/2, π/2].
type Spherical struct{}

// Frame is the sealed constraint over the frame tags.
type Frame interface {
	Cartesian | Cylindrical | Spherical

	kind() Kind
	// canonical folds arbitrary input into the frame's invariant domain.
	canonical(c [3]float64) [3]float64
	// scale multiplies the represented point by k natively.
	scale(c [3]float64, k float64) [3]float64
	// div divides the represented point by a non-zero k natively.
	div(c [3]float64, k float64) [3]float64
	// norm is the Euclidean length of the represented point.
	norm(c [3]float64) float64
}

func (Cartesian) kind() Kind   { return KindCartesian }
func (Cylindrical) kind() Kind { return KindCylindrical }
func (Spherical) kind() Kind   { return KindSpherical }

// ---------- Cartesian ----------

func (Cartesian) canonical(c [3]float64) [3]float64 { return c }

func (Cartesian) scale(c [3]float64, k float64) [3]float64 {
	return [3]float64{c[0] * k, c[1] * k, c[2] * k}
}

func (Cartesian) div(c [3]float64, k float64) [3]float64 {
	return [3]float64{c[0] / k, c[1] / k, c[2] / k}
}

// norm: nested hypot keeps |v| finite wherever the other frames are.
func (Cartesian) norm(c [3]float64) float64 {
	return math.Hypot(math.Hypot(c[0], c[1]), c[2])
}

// ---------- Cylindrical ----------

// canonical: ρ<0 ⇒ ρ=−ρ, φ+=π; φ folded into [0, 2π).
func (Cylindrical) canonical(c [3]float64) [3]float64 {
	rho, phi := c[0], c[1]
	if rho < 0 {
		rho, phi = -rho, phi+math.Pi
	}

	return [3]float64{rho, angle.NormalizeAzimuth(phi), c[2]}
}

// scale: negative k flips the azimuth by π; ρ stays non-negative.
func (Cylindrical) scale(c [3]float64, k float64) [3]float64 {
	if k < 0 {
		return [3]float64{-k * c[0], angle.NormalizeAzimuth(c[1] + math.Pi), k * c[2]}
	}

	return [3]float64{k * c[0], c[1], k * c[2]}
}

func (Cylindrical) div(c [3]float64, k float64) [3]float64 {
	if k < 0 {
		return [3]float64{c[0] / -k, angle.NormalizeAzimuth(c[1] + math.Pi), c[2] / k}
	}

	return [3]float64{c[0] / k, c[1], c[2] / k}
}

func (Cylindrical) norm(c [3]float64) float64 { return math.Hypot(c[0], c[2]) }

// ---------- Spherical ----------

// canonical: r<0 ⇒ r=−r, θ=−θ, φ+=π; then θ clamped, φ folded.
func (Spherical) canonical(c [3]float64) [3]float64 {
	r, phi, theta := c[0], c[1], c[2]
	if r < 0 {
		r, phi, theta = -r, phi+math.Pi, -theta
	}

	return [3]float64{r, angle.NormalizeAzimuth(phi), angle.ClampElevation(theta)}
}

// scale: negative k maps to the antipode (φ+π, −θ); r stays non-negative.
func (Spherical) scale(c [3]float64, k float64) [3]float64 {
	if k < 0 {
		return [3]float64{-k * c[0], angle.NormalizeAzimuth(c[1] + math.Pi), -c[2]}
	}

	return [3]float64{k * c[0], c[1], c[2]}
}

func (Spherical) div(c [3]float64, k float64) [3]float64 {
	if k < 0 {
		return [3]float64{c[0] / -k, angle.NormalizeAzimuth(c[1] + math.Pi), -c[2]}
	}

	return [3]float64{c[0] / k, c[1], c[2]}
}

func (Spherical) norm(c [3]float64) float64 { return c[0] }
