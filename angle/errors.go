// SPDX-License-Identifier: MIT

// Package angle: sentinel error set.
// All checked constructors return these sentinels (possibly wrapped with
// call-site context); callers match with errors.Is.

package angle

import "errors"

var (
	// ErrInvalidComponent is returned when a sexagesimal component is out of
	// range (negative degrees/hours with a sign flag, minutes or seconds ≥ 60).
	ErrInvalidComponent = errors.New("angle: invalid sexagesimal component")

	// ErrUnknownUnit is returned by ParseUnit for an unrecognized unit name.
	ErrUnknownUnit = errors.New("angle: unknown unit")
)
