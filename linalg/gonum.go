// SPDX-License-Identifier: MIT

// Package linalg - interoperability with gonum's mat package.
//
// Mat3D stays a fixed-size value type for the hot paths; Dense/FromMatrix
// let callers hand a matrix to gonum's general decompositions (SVD, Eigen)
// and bring the result back.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense returns a freshly allocated gonum 3×3 copy of m.
func (m Mat3D) Dense() *mat.Dense {
	e := m.Elements()

	return mat.NewDense(dim, dim, e[:])
}

// FromMatrix copies a gonum matrix into a Mat3D.
// Returns ErrDimensionMismatch unless src is 3×3.
func FromMatrix(src mat.Matrix) (Mat3D, error) {
	r, c := src.Dims()
	if r != dim || c != dim {
		return Mat3D{}, linalgErrorf(opFromMatrix, fmt.Errorf("%w: got %d×%d", ErrDimensionMismatch, r, c))
	}
	var out Mat3D
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.a[i][j] = src.At(i, j)
		}
	}

	return out, nil
}

// VecDense returns v's Cartesian projection as a gonum column vector.
func (v Vector3D) VecDense() *mat.VecDense {
	c := v.cart()

	return mat.NewVecDense(dim, c[:])
}

// FromVector copies a gonum vector of length 3 into a Cartesian Vector3D.
// Returns ErrDimensionMismatch for any other length.
func FromVector(src mat.Vector) (Vector3D, error) {
	if n := src.Len(); n != dim {
		return Vector3D{}, linalgErrorf(opFromVector, fmt.Errorf("%w: got length %d", ErrDimensionMismatch, n))
	}

	return FromCartesian(src.AtVec(0), src.AtVec(1), src.AtVec(2)), nil
}
