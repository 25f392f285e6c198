// Package linalg_test cross-checks the matrix engine against gonum.
package linalg_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/new-divos/ephemeris-sub000/linalg"
)

// TestGonum_RoundTrip copies through *mat.Dense and back.
func TestGonum_RoundTrip(t *testing.T) {
	m := linalg.NewMat3D([3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	d := m.Dense()
	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2))

	back, err := linalg.FromMatrix(d)
	require.NoError(t, err)
	require.Equal(t, m, back)

	back, err = linalg.FromMatrix(d.T())
	require.NoError(t, err)
	require.Equal(t, m.Transpose(), back)

	_, err = linalg.FromMatrix(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestGonum_Vector copies vectors in their Cartesian projection.
func TestGonum_Vector(t *testing.T) {
	v := linalg.FromCartesian(1, -2, 3)
	vd := v.VecDense()
	require.Equal(t, 3, vd.Len())
	require.Equal(t, -2.0, vd.AtVec(1))

	back, err := linalg.FromVector(vd)
	require.NoError(t, err)
	require.Equal(t, v, back)

	_, err = linalg.FromVector(mat.NewVecDense(2, nil))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	require.True(t, strings.HasPrefix(err.Error(), "FromVector: "), err.Error())
}

// TestGonum_Oracle compares determinant, inverse and products with gonum.
func TestGonum_Oracle(t *testing.T) {
	rng := rand.New(rand.NewSource(propertySeed + 10))
	for n := 0; n < 200; n++ {
		a := randomMatrix(rng)
		b := randomMatrix(rng)
		da, db := a.Dense(), b.Dense()

		require.InDelta(t, mat.Det(da), a.Determinant(), 1e-9*math.Max(1, math.Abs(a.Determinant())))

		var prod mat.Dense
		prod.Mul(da, db)
		got, err := linalg.FromMatrix(&prod)
		require.NoError(t, err)
		require.True(t, a.Mul(b).ApproxEqual(got, linalg.WithEpsilon(1e-10)))

		if math.Abs(a.Determinant()) < 1 {
			continue
		}
		var inv mat.Dense
		require.NoError(t, inv.Inverse(da))
		want, err := linalg.FromMatrix(&inv)
		require.NoError(t, err)
		mine, err := a.Inverse()
		require.NoError(t, err)
		require.True(t, mine.ApproxEqual(want, linalg.WithEpsilon(1e-9), linalg.WithRelative(1e-9)), "inverse of\n%v", a)
	}
}
