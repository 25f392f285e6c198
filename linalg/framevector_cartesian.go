// SPDX-License-Identifier: MIT

// Package linalg - Cartesian-only FrameVector algebra.
//
// Addition, subtraction and axis indexing are meaningful only for the
// Cartesian frame, so they are package functions over CartesianVector
// rather than methods of the generic type.

package linalg

// Axis names a Cartesian axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "X", "Y" or "Z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "Axis(?)"
	}
}

// Add returns a + b.
func Add(a, b CartesianVector) CartesianVector {
	return CartesianVector{c: [3]float64{a.c[0] + b.c[0], a.c[1] + b.c[1], a.c[2] + b.c[2]}}
}

// Sub returns a − b.
func Sub(a, b CartesianVector) CartesianVector {
	return CartesianVector{c: [3]float64{a.c[0] - b.c[0], a.c[1] - b.c[1], a.c[2] - b.c[2]}}
}

// AxisValue returns the component of v along axis.
// Panics on an axis outside X/Y/Z, like an out-of-range array index.
func AxisValue(v CartesianVector, axis Axis) float64 { return v.c[axis] }

// AxisPtr returns a pointer to the component of *v along axis, for in-place
// mutation. Any float64 written keeps the Cartesian invariant.
// Panics on an axis outside X/Y/Z.
func AxisPtr(v *CartesianVector, axis Axis) *float64 { return &v.c[axis] }
