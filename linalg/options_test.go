package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/new-divos/ephemeris-sub000/linalg"
)

// TestOptions_Panics on nonsensical tolerances.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { linalg.WithEpsilon(-1) })
	assert.Panics(t, func() { linalg.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { linalg.WithRelative(math.Inf(1)) })
	assert.NotPanics(t, func() { linalg.WithEpsilon(0) })
}

// TestOptions_Tolerance drives ApproxEqual.
func TestOptions_Tolerance(t *testing.T) {
	a := linalg.FromCartesian(1, 1, 1)
	b := linalg.FromCartesian(1.05, 1, 1)

	assert.False(t, a.ApproxEqual(b))
	assert.True(t, a.ApproxEqual(b, linalg.WithEpsilon(0.1)))
	assert.True(t, a.ApproxEqual(b, linalg.WithEpsilon(0), linalg.WithRelative(0.1)))
	assert.True(t, a.ApproxEqual(a, linalg.WithEpsilon(0)))
	assert.True(t, a.ApproxEqual(b, nil, linalg.WithEpsilon(0.1)), "nil options are skipped")

	nan := linalg.FromCartesian(math.NaN(), 0, 0)
	assert.False(t, nan.ApproxEqual(nan))

	m := linalg.Identity()
	assert.True(t, m.ApproxEqual(m.With(0, 0, 1+1e-12)))
	assert.False(t, m.ApproxEqual(m.With(0, 0, 1.1)))
}
