package linalg_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// cmpApproxAbs compares float64 values within an absolute margin.
func cmpApproxAbs(margin float64) cmp.Option { return cmpopts.EquateApprox(0, margin) }
