// SPDX-License-Identifier: MIT

// Package linalg - elementary rotation matrices.
//
// Sign convention (keep exactly; callers depend on it):
//   - RotX and RotY are the TRANSPOSE of the textbook active rotation, i.e.
//     they rotate the reference frame by +angle (passive form).
//   - RotZ uses the textbook active form.
//
//	RotX(a) = | 1   0    0 |   RotY(a) = | c  0  -s |   RotZ(a) = | c  -s  0 |
//	          | 0   c    s |             | 0  1   0 |             | s   c  0 |
//	          | 0  -s    c |             | s  0   c |             | 0   0  1 |

package linalg

import "math"

// RotX returns the rotation about the x axis by angle radians.
func RotX(angle float64) Mat3D {
	s, c := math.Sincos(angle)

	return Mat3D{a: [dim][dim]float64{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}}
}

// RotY returns the rotation about the y axis by angle radians.
func RotY(angle float64) Mat3D {
	s, c := math.Sincos(angle)

	return Mat3D{a: [dim][dim]float64{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}}
}

// RotZ returns the rotation about the z axis by angle radians.
func RotZ(angle float64) Mat3D {
	s, c := math.Sincos(angle)

	return Mat3D{a: [dim][dim]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}}
}
