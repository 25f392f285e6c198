// SPDX-License-Identifier: MIT

// Package linalg - coordinate conversions shared by FrameVector and Vector3D.
//
// Every directed pair among the three frames has its own direct route; no
// route composes through a third frame. Degenerate geometry never fails:
//   - azimuth of a point on the z axis is 0,
//   - elevation of the origin is 0.

package linalg

import (
	"math"

	"github.com/new-divos/ephemeris-sub000/angle"
)

// azimuth returns atan2(y, x) folded into [0, 2π), or 0 when x = y = 0.
func azimuth(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}

	return angle.NormalizeAzimuth(math.Atan2(y, x))
}

// elevation returns atan2(z, ρ), or 0 when ρ = z = 0.
func elevation(rho, z float64) float64 {
	if rho == 0 && z == 0 {
		return 0
	}

	return math.Atan2(z, rho)
}

func cartesianToCylindrical(c [3]float64) [3]float64 {
	x, y, z := c[0], c[1], c[2]

	return [3]float64{math.Hypot(x, y), azimuth(x, y), z}
}

func cartesianToSpherical(c [3]float64) [3]float64 {
	x, y, z := c[0], c[1], c[2]
	rho := math.Hypot(x, y)

	return [3]float64{math.Hypot(rho, z), azimuth(x, y), elevation(rho, z)}
}

func cylindricalToCartesian(c [3]float64) [3]float64 {
	rho, phi, z := c[0], c[1], c[2]
	sin, cos := math.Sincos(phi)

	return [3]float64{rho * cos, rho * sin, z}
}

func cylindricalToSpherical(c [3]float64) [3]float64 {
	rho, phi, z := c[0], c[1], c[2]

	return [3]float64{math.Hypot(rho, z), phi, elevation(rho, z)}
}

func sphericalToCartesian(c [3]float64) [3]float64 {
	r, phi, theta := c[0], c[1], c[2]
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	rho := r * cosT

	return [3]float64{rho * cosP, rho * sinP, r * sinT}
}

func sphericalToCylindrical(c [3]float64) [3]float64 {
	r, phi, theta := c[0], c[1], c[2]
	sinT, cosT := math.Sincos(theta)

	return [3]float64{r * cosT, phi, r * sinT}
}

// convertCoords routes c from frame `from` to frame `to`.
// Same-frame conversion returns c unchanged.
func convertCoords(from, to Kind, c [3]float64) [3]float64 {
	switch {
	case from == to:
		return c
	case from == KindCartesian && to == KindCylindrical:
		return cartesianToCylindrical(c)
	case from == KindCartesian && to == KindSpherical:
		return cartesianToSpherical(c)
	case from == KindCylindrical && to == KindCartesian:
		return cylindricalToCartesian(c)
	case from == KindCylindrical && to == KindSpherical:
		return cylindricalToSpherical(c)
	case from == KindSpherical && to == KindCartesian:
		return sphericalToCartesian(c)
	case from == KindSpherical && to == KindCylindrical:
		return sphericalToCylindrical(c)
	default:
		// Kinds are only ever produced by this package.
		panic("linalg: unknown frame kind " + from.String() + "→" + to.String())
	}
}
