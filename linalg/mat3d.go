// SPDX-License-Identifier: MIT

// Package linalg - Mat3D storage, constructors & accessors.
//
// Purpose:
//   - Dense 3×3 row-major value type; any real entries are valid.
//   - Zero/ones/identity/rows/columns/rotation factories (rotation.go).
//   - Row/column/element access with Euclidean wrap-around: an index i is
//     mapped into [0,3) so that −1 addresses the last row/column.
//   - Lazy, restartable row-major iteration over the nine entries.
//
// Complexity quicksheet:
//   - every constructor and accessor is O(1) and allocation-free.

package linalg

import (
	"fmt"
	"iter"
	"strings"
)

// Dimension of every Mat3D and Vector3D.
const dim = 3

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Mat3D is a dense 3×3 float64 matrix in row-major order.
// The zero value is the zero matrix.
type Mat3D struct {
	a [dim][dim]float64
}

// NewMat3D returns the matrix with the given rows.
func NewMat3D(rows [3][3]float64) Mat3D { return Mat3D{a: rows} }

// Zeros returns the zero matrix.
func Zeros() Mat3D { return Mat3D{} }

// Ones returns the matrix with every entry equal to 1.
func Ones() Mat3D {
	return Mat3D{a: [dim][dim]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}}
}

// Identity returns I₃.
func Identity() Mat3D {
	return Mat3D{a: [dim][dim]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// FromRows builds the matrix whose rows are the Cartesian projections of
// r0, r1, r2.
func FromRows(r0, r1, r2 Vector3D) Mat3D {
	return Mat3D{a: [dim][dim]float64{r0.cart(), r1.cart(), r2.cart()}}
}

// FromColumns builds the matrix whose columns are the Cartesian projections
// of c0, c1, c2.
func FromColumns(c0, c1, c2 Vector3D) Mat3D { return FromRows(c0, c1, c2).Transpose() }

// wrap maps any index into [0, 3) by Euclidean modulo.
func wrap(i int) int {
	i %= dim
	if i < 0 {
		i += dim
	}

	return i
}

// At returns entry (i, j); both indices wrap (−1 is the last).
func (m Mat3D) At(i, j int) float64 { return m.a[wrap(i)][wrap(j)] }

// With returns a copy of m with entry (i, j) replaced; indices wrap.
func (m Mat3D) With(i, j int, v float64) Mat3D {
	m.a[wrap(i)][wrap(j)] = v

	return m
}

// Row returns row i as a Cartesian vector; i wraps (−1 is the last row).
func (m Mat3D) Row(i int) Vector3D { return cartesian(m.a[wrap(i)]) }

// Column returns column j as a Cartesian vector; j wraps.
func (m Mat3D) Column(j int) Vector3D {
	j = wrap(j)

	return cartesian([3]float64{m.a[0][j], m.a[1][j], m.a[2][j]})
}

// Array returns a copy of the entries as rows.
func (m Mat3D) Array() [3][3]float64 { return m.a }

// Elements returns the nine entries in row-major order.
func (m Mat3D) Elements() [9]float64 {
	var out [9]float64
	for i := 0; i < dim; i++ {
		copy(out[i*dim:(i+1)*dim], m.a[i][:])
	}

	return out
}

// All yields the nine entries in row-major order.
// The sequence is finite and may be ranged over any number of times; each
// pass sees the values of m at the time All was called.
func (m Mat3D) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				if !yield(m.a[i][j]) {
					return
				}
			}
		}
	}
}

// ApproxEqual reports whether every entry of m is within tolerance of o.
func (m Mat3D) ApproxEqual(o Mat3D, opts ...Option) bool {
	cfg := gatherOptions(opts...)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if !cfg.close(m.a[i][j], o.a[i][j]) {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m Mat3D) String() string {
	var b strings.Builder
	for i := 0; i < dim; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < dim; j++ {
			fmt.Fprintf(&b, "%g", m.a[i][j])
			if j+1 < dim {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
