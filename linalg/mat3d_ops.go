// SPDX-License-Identifier: MIT

// Package linalg - Mat3D algebra: element-wise ops, products, determinant,
// adjugate inverse and the division family.
//
// Numeric policy:
//   - Zero divisors and zero determinants are detected by EXACT equality
//     with 0.0; there is no epsilon. Near-singular matrices invert (with
//     correspondingly large entries).
//   - Loop orders are fixed (i→j→k) so results are bit-reproducible.

package linalg

// Neg returns −m.
func (m Mat3D) Neg() Mat3D { return m.Scale(-1) }

// Add returns m + o.
func (m Mat3D) Add(o Mat3D) Mat3D {
	var out Mat3D
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.a[i][j] = m.a[i][j] + o.a[i][j]
		}
	}

	return out
}

// Sub returns m − o.
func (m Mat3D) Sub(o Mat3D) Mat3D {
	var out Mat3D
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.a[i][j] = m.a[i][j] - o.a[i][j]
		}
	}

	return out
}

// Scale returns k·m.
func (m Mat3D) Scale(k float64) Mat3D {
	var out Mat3D
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.a[i][j] = m.a[i][j] * k
		}
	}

	return out
}

// MulScalarMat returns k·m; the scalar-first spelling of m.Scale(k).
func MulScalarMat(k float64, m Mat3D) Mat3D { return m.Scale(k) }

// Mul returns the matrix product m × o.
func (m Mat3D) Mul(o Mat3D) Mat3D {
	var (
		out     Mat3D
		i, j, k int
		sum     float64
	)
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			sum = 0
			for k = 0; k < dim; k++ {
				sum += m.a[i][k] * o.a[k][j]
			}
			out.a[i][j] = sum
		}
	}

	return out
}

// MulVec returns m·v as a Cartesian vector; v is projected to Cartesian first.
func (m Mat3D) MulVec(v Vector3D) Vector3D {
	x := v.cart()
	var y [3]float64
	for i := 0; i < dim; i++ {
		y[i] = m.a[i][0]*x[0] + m.a[i][1]*x[1] + m.a[i][2]*x[2]
	}

	return cartesian(y)
}

// Div returns m/k.
// Returns ErrZeroDivision if k is exactly 0.
func (m Mat3D) Div(k float64) (Mat3D, error) {
	if k == 0 {
		return Mat3D{}, linalgErrorf(opMatDiv, ErrZeroDivision)
	}
	var out Mat3D
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.a[i][j] = m.a[i][j] / k
		}
	}

	return out, nil
}

// DivMatrix returns m × o⁻¹.
// Returns ErrSingularMatrix if o has a zero determinant.
func (m Mat3D) DivMatrix(o Mat3D) (Mat3D, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Mat3D{}, linalgErrorf(opMatDivMatrix, err)
	}

	return m.Mul(inv), nil
}

// ScalarDiv returns k · m⁻¹ (the scalar divided by the matrix).
// Returns ErrSingularMatrix if m has a zero determinant.
func ScalarDiv(k float64, m Mat3D) (Mat3D, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Mat3D{}, linalgErrorf(opScalarDiv, err)
	}

	return inv.Scale(k), nil
}

// Determinant returns det(m) by cofactor expansion along the first row.
func (m Mat3D) Determinant() float64 {
	a := &m.a

	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Classical adjugate method; the adjugate is the transposed cofactor matrix.
//
// Errors:
//   - ErrSingularMatrix when det(m) == 0.0 exactly. No tolerance is applied.
//
// Complexity:
//   - Time O(1) (fixed 3×3), no allocation.
func (m Mat3D) Inverse() (Mat3D, error) {
	det := m.Determinant()
	if det == 0 {
		return Mat3D{}, linalgErrorf(opInverse, ErrSingularMatrix)
	}
	a := &m.a

	var out Mat3D
	out.a[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	out.a[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	out.a[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	out.a[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	out.a[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	out.a[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	out.a[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	out.a[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	out.a[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det

	return out, nil
}

// Transpose returns mᵀ.
func (m Mat3D) Transpose() Mat3D {
	var out Mat3D
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.a[j][i] = m.a[i][j]
		}
	}

	return out
}

// Trace returns the sum of the diagonal.
func (m Mat3D) Trace() float64 { return m.a[0][0] + m.a[1][1] + m.a[2][2] }

// IsOrthogonal reports whether m·mᵀ ≈ I within the configured tolerance.
// Rotation matrices satisfy this.
func (m Mat3D) IsOrthogonal(opts ...Option) bool {
	return m.Mul(m.Transpose()).ApproxEqual(Identity(), opts...)
}
