// Package linalg_test contains unit tests for the 3×3 matrix engine.
package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/new-divos/ephemeris-sub000/linalg"
)

// Mat3DSuite exercises Mat3D construction, access and algebra.
type Mat3DSuite struct {
	suite.Suite
	seq      linalg.Mat3D // [[1,2,3],[4,5,6],[7,8,9]], singular
	regular  linalg.Mat3D // [[1,2,3],[4,5,6],[7,8,10]], det = −3
	inverseR linalg.Mat3D // regular⁻¹
}

func (s *Mat3DSuite) SetupTest() {
	s.seq = linalg.NewMat3D([3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	s.regular = linalg.NewMat3D([3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	s.inverseR = linalg.NewMat3D([3][3]float64{
		{-2.0 / 3, -4.0 / 3, 1},
		{-2.0 / 3, 11.0 / 3, -2},
		{1, -2, 1},
	})
}

// TestFactories checks zero, ones and identity.
func (s *Mat3DSuite) TestFactories() {
	for v := range linalg.Zeros().All() {
		s.Equal(0.0, v)
	}
	for v := range linalg.Ones().All() {
		s.Equal(1.0, v)
	}
	id := linalg.Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			s.Equal(want, id.At(i, j))
		}
	}
	s.Equal(linalg.Zeros(), linalg.Mat3D{})
}

// TestFromRowsColumns builds from vectors in any frame.
func (s *Mat3DSuite) TestFromRowsColumns() {
	r0 := linalg.FromCartesian(1, 2, 3)
	r1 := linalg.FromCartesian(4, 5, 6)
	r2 := linalg.FromCartesian(7, 8, 9)

	s.Equal(s.seq, linalg.FromRows(r0, r1, r2))
	s.Equal(s.seq.Transpose(), linalg.FromColumns(r0, r1, r2))

	sph, err := linalg.FromSpherical(2, 0, 0)
	require.NoError(s.T(), err)
	m := linalg.FromRows(sph, r1, r2)
	s.InDelta(2.0, m.At(0, 0), tol)
	s.InDelta(0.0, m.At(0, 1), tol)
}

// TestWrapAround maps negative indices from the end.
func (s *Mat3DSuite) TestWrapAround() {
	s.Equal(linalg.FromCartesian(7, 8, 9), s.seq.Row(-1))
	s.Equal(s.seq.Row(2), s.seq.Row(-1))
	s.Equal(s.seq.Column(0), s.seq.Column(-3))
	s.Equal(linalg.FromCartesian(1, 4, 7), s.seq.Column(-3))
	s.Equal(s.seq.Row(0), s.seq.Row(3))
	s.Equal(9.0, s.seq.At(-1, -1))
	s.Equal(3.0, s.seq.At(0, 5))
	s.True(s.seq.Row(1).IsCartesian())

	m := s.seq.With(-1, 0, 70)
	s.Equal(70.0, m.At(2, 0))
	s.Equal(7.0, s.seq.At(2, 0), "With must not mutate the receiver")
}

// TestDeterminantAndSingular: zero determinant ⇒ inversion fails.
func (s *Mat3DSuite) TestDeterminantAndSingular() {
	s.Equal(0.0, s.seq.Determinant())
	_, err := s.seq.Inverse()
	s.ErrorIs(err, linalg.ErrSingularMatrix)

	s.Equal(-3.0, s.regular.Determinant())
	s.Equal(1.0, linalg.Identity().Determinant())
	s.Equal(0.0, linalg.Ones().Determinant())
}

// TestInverse against a hand-computed adjugate.
func (s *Mat3DSuite) TestInverse() {
	inv, err := s.regular.Inverse()
	require.NoError(s.T(), err)
	s.True(inv.ApproxEqual(s.inverseR, linalg.WithEpsilon(1e-12)), "got\n%v", inv)
	s.True(s.regular.Mul(inv).ApproxEqual(linalg.Identity(), linalg.WithEpsilon(1e-12)))
	s.True(inv.Mul(s.regular).ApproxEqual(linalg.Identity(), linalg.WithEpsilon(1e-12)))
}

// TestElementwise covers Neg/Add/Sub/Scale.
func (s *Mat3DSuite) TestElementwise() {
	sum := s.seq.Add(s.seq.Neg())
	s.Equal(linalg.Zeros(), sum)
	s.Equal(s.seq.Scale(2), s.seq.Add(s.seq))
	s.Equal(s.seq.Scale(3), linalg.MulScalarMat(3, s.seq))
	s.Equal(linalg.Ones(), s.regular.Sub(s.seq).Add(linalg.NewMat3D([3][3]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 0}})))
}

// TestMul_KnownProduct checks the triple sum.
func (s *Mat3DSuite) TestMul_KnownProduct() {
	want := linalg.NewMat3D([3][3]float64{{30, 36, 42}, {66, 81, 96}, {102, 126, 150}})
	s.Equal(want, s.seq.Mul(s.seq))
	s.Equal(s.seq, s.seq.Mul(linalg.Identity()))
	s.Equal(s.seq, linalg.Identity().Mul(s.seq))
}

// TestMulVec returns a Cartesian result for any operand frame.
func (s *Mat3DSuite) TestMulVec() {
	got := s.seq.MulVec(linalg.FromCartesian(1, 0, -1))
	s.Equal(linalg.FromCartesian(-2, -2, -2), got)

	sph, err := linalg.FromSpherical(1, math.Pi/2, 0)
	require.NoError(s.T(), err)
	out := linalg.Identity().MulVec(sph)
	s.True(out.IsCartesian())
	s.True(out.ApproxEqual(linalg.FromCartesian(0, 1, 0)))
}

// TestDivision covers scalar, matrix and scalar-by-matrix division.
func (s *Mat3DSuite) TestDivision() {
	_, err := s.seq.Div(0)
	s.ErrorIs(err, linalg.ErrZeroDivision)

	half, err := s.seq.Div(2)
	require.NoError(s.T(), err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s.Equal(s.seq.At(i, j)/2, half.At(i, j))
		}
	}

	_, err = s.regular.DivMatrix(s.seq)
	s.ErrorIs(err, linalg.ErrSingularMatrix)

	q, err := s.regular.DivMatrix(s.regular)
	require.NoError(s.T(), err)
	s.True(q.ApproxEqual(linalg.Identity(), linalg.WithEpsilon(1e-12)))

	k, err := linalg.ScalarDiv(3, s.regular)
	require.NoError(s.T(), err)
	s.True(k.ApproxEqual(s.inverseR.Scale(3), linalg.WithEpsilon(1e-12)))

	_, err = linalg.ScalarDiv(3, s.seq)
	s.ErrorIs(err, linalg.ErrSingularMatrix)
}

// TestTransposeTrace covers the remaining scalar/structural ops.
func (s *Mat3DSuite) TestTransposeTrace() {
	tr := s.seq.Transpose()
	s.Equal(s.seq.Row(0), tr.Column(0))
	s.Equal(s.seq, tr.Transpose())
	s.Equal(15.0, s.seq.Trace())
	s.Equal(3.0, linalg.Identity().Trace())
}

// TestRotations pins the sign convention of each elementary rotation.
func (s *Mat3DSuite) TestRotations() {
	const q = math.Pi / 2
	eps := linalg.WithEpsilon(1e-15)

	s.True(linalg.RotZ(q).MulVec(linalg.FromCartesian(1, 0, 0)).ApproxEqual(linalg.FromCartesian(0, 1, 0), eps))
	s.True(linalg.RotX(q).MulVec(linalg.FromCartesian(0, 1, 0)).ApproxEqual(linalg.FromCartesian(0, 0, -1), eps))
	s.True(linalg.RotY(q).MulVec(linalg.FromCartesian(1, 0, 0)).ApproxEqual(linalg.FromCartesian(0, 0, 1), eps))

	sn, c := math.Sincos(0.3)
	s.Equal(linalg.NewMat3D([3][3]float64{{1, 0, 0}, {0, c, sn}, {0, -sn, c}}), linalg.RotX(0.3))
	s.Equal(linalg.NewMat3D([3][3]float64{{c, 0, -sn}, {0, 1, 0}, {sn, 0, c}}), linalg.RotY(0.3))
	s.Equal(linalg.NewMat3D([3][3]float64{{c, -sn, 0}, {sn, c, 0}, {0, 0, 1}}), linalg.RotZ(0.3))

	for _, rot := range []func(float64) linalg.Mat3D{linalg.RotX, linalg.RotY, linalg.RotZ} {
		s.True(rot(1.1).IsOrthogonal())
		s.True(rot(1.1).Mul(rot(-1.1)).ApproxEqual(linalg.Identity()))
		s.InDelta(1.0, rot(1.1).Determinant(), 1e-15)
	}
	s.False(s.seq.IsOrthogonal())
}

// TestIteration yields nine row-major entries, restartable, stoppable.
func (s *Mat3DSuite) TestIteration() {
	collect := func() []float64 {
		var out []float64
		for v := range s.seq.All() {
			out = append(out, v)
		}
		return out
	}
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	s.Equal(want, collect())
	s.Equal(want, collect(), "second pass must see the same sequence")
	s.Equal([9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, s.seq.Elements())

	n := 0
	for range s.seq.All() {
		n++
		if n == 4 {
			break
		}
	}
	s.Equal(4, n)
}

// TestString renders bracketed rows.
func (s *Mat3DSuite) TestString() {
	s.Equal("[1, 2, 3]\n[4, 5, 6]\n[7, 8, 9]\n", s.seq.String())
	s.Equal([3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, s.seq.Array())
}

func TestMat3DSuite(t *testing.T) {
	suite.Run(t, new(Mat3DSuite))
}
