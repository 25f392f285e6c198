// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for approximate comparisons.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error); public APIs consume ...Option.
//
// Notes:
//   - Tolerances never affect the exact-zero contracts of Div/Inverse; they
//     are used by ApproxEqual and IsOrthogonal only.

package linalg

import "math"

// DefaultEpsilon is the absolute tolerance used by approximate comparisons.
const DefaultEpsilon = 1e-9

// DefaultRelative is the relative tolerance used by approximate comparisons.
const DefaultRelative = 0.0

const (
	panicEpsilonInvalid  = "linalg: WithEpsilon: eps must be finite, non-negative"
	panicRelativeInvalid = "linalg: WithRelative: rtol must be finite, non-negative"
)

// Option mutates comparison options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps  float64 // absolute tolerance, >= 0
	rtol float64 // relative tolerance, >= 0
}

// WithEpsilon sets the absolute tolerance.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelative sets the relative tolerance applied to the reference value.
// Panics if rtol is negative, NaN or ±Inf.
func WithRelative(rtol float64) Option {
	if rtol < 0 || math.IsNaN(rtol) || math.IsInf(rtol, 0) {
		panic(panicRelativeInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// gatherOptions resolves opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, rtol: DefaultRelative}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Epsilon returns the absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Relative returns the relative tolerance.
func (o Options) Relative() float64 { return o.rtol }

// close checks |a-b| ≤ eps + rtol*|b|. NaN is never close; equal infinities are.
func (o Options) close(a, b float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= o.eps+o.rtol*math.Abs(b)
}
