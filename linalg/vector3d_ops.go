// SPDX-License-Identifier: MIT

// Package linalg - Vector3D arithmetic.
//
// Policy (intentional asymmetry):
//   - Binary operations (Neg, Add, Sub, Scale, Div, Cross, DivMatrix) convert
//     operands to Cartesian, compute, and return a CARTESIAN result whatever
//     the operand frames were.
//   - Compound operations (AddAssign, SubAssign, ScaleAssign, DivAssign) run
//     in three explicit steps: normalize the receiver to Cartesian, mutate,
//     re-tag the result back into the receiver's original frame. Repeated
//     compound ops in a non-Cartesian frame may drift by rounding.

package linalg

// cart returns the Cartesian components of v.
func (v Vector3D) cart() [3]float64 { return convertCoords(v.kind, KindCartesian, v.c) }

func cartesian(c [3]float64) Vector3D { return Vector3D{kind: KindCartesian, c: c} }

// Neg returns −v in the Cartesian frame.
func (v Vector3D) Neg() Vector3D {
	a := v.cart()

	return cartesian([3]float64{-a[0], -a[1], -a[2]})
}

// Add returns v + o in the Cartesian frame.
func (v Vector3D) Add(o Vector3D) Vector3D {
	a, b := v.cart(), o.cart()

	return cartesian([3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]})
}

// Sub returns v − o in the Cartesian frame.
func (v Vector3D) Sub(o Vector3D) Vector3D {
	a, b := v.cart(), o.cart()

	return cartesian([3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]})
}

// Scale returns k·v in the Cartesian frame.
func (v Vector3D) Scale(k float64) Vector3D {
	a := v.cart()

	return cartesian([3]float64{a[0] * k, a[1] * k, a[2] * k})
}

// Div returns v/k in the Cartesian frame.
// Returns ErrZeroDivision if k is exactly 0.
func (v Vector3D) Div(k float64) (Vector3D, error) {
	if k == 0 {
		return Vector3D{}, linalgErrorf(opVectorDiv, ErrZeroDivision)
	}
	a := v.cart()

	return cartesian([3]float64{a[0] / k, a[1] / k, a[2] / k}), nil
}

// DivMatrix returns m⁻¹·v in the Cartesian frame.
// Returns ErrSingularMatrix if m has a zero determinant.
func (v Vector3D) DivMatrix(m Mat3D) (Vector3D, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Vector3D{}, linalgErrorf(opVectorDivMatrix, err)
	}

	return inv.MulVec(v), nil
}

// Dot returns the Euclidean inner product.
func (v Vector3D) Dot(o Vector3D) float64 {
	a, b := v.cart(), o.cart()

	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns v × o in the Cartesian frame.
func (v Vector3D) Cross(o Vector3D) Vector3D {
	a, b := v.cart(), o.cart()

	return cartesian([3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	})
}

// ---------- Compound (frame-preserving) ----------

// retag stores the Cartesian result r into v, converted back to v's frame.
func (v *Vector3D) retag(r Vector3D) { *v = r.To(v.kind) }

// AddAssign sets v = v + o, keeping v's frame.
func (v *Vector3D) AddAssign(o Vector3D) { v.retag(v.Add(o)) }

// SubAssign sets v = v − o, keeping v's frame.
func (v *Vector3D) SubAssign(o Vector3D) { v.retag(v.Sub(o)) }

// ScaleAssign sets v = k·v, keeping v's frame.
func (v *Vector3D) ScaleAssign(k float64) { v.retag(v.Scale(k)) }

// DivAssign sets v = v/k, keeping v's frame.
// On ErrZeroDivision v is left unchanged.
func (v *Vector3D) DivAssign(k float64) error {
	if k == 0 {
		return linalgErrorf(opVectorDivAssign, ErrZeroDivision)
	}
	a := v.cart()
	v.retag(cartesian([3]float64{a[0] / k, a[1] / k, a[2] / k}))

	return nil
}
