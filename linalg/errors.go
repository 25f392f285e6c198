// SPDX-License-Identifier: MIT

// Package linalg: sentinel error set.
// Every fallible operation returns one of these sentinels, wrapped with an
// operation tag via linalgErrorf. Tests and callers MUST match with
// errors.Is / errors.As. No operation panics on user-triggered conditions.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDivision is returned when a scalar divisor is exactly 0.0.
	ErrZeroDivision = errors.New("linalg: division by zero")

	// ErrSingularMatrix is returned when a determinant is exactly 0.0 and an
	// inverse is required.
	ErrSingularMatrix = errors.New("linalg: singular matrix")

	// ErrInvalidAttribute is matched by every *InvalidAttributeError: a
	// cylindrical/spherical vector was constructed with an out-of-domain
	// radius or elevation.
	ErrInvalidAttribute = errors.New("linalg: invalid vector attribute")

	// ErrConversion signals a representation that cannot be decoded into any
	// frame (e.g. a serialized vector naming zero or several frames).
	ErrConversion = errors.New("linalg: conversion failure")

	// ErrDimensionMismatch is returned when a foreign matrix is not 3×3.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
)

// Attribute names carried by InvalidAttributeError.
const (
	AttrRho    = "rho"    // cylindrical radius
	AttrRadius = "radius" // spherical radius
	AttrTheta  = "theta"  // spherical elevation
)

// InvalidAttributeError reports which vector attribute was out of domain
// and the offending value.
type InvalidAttributeError struct {
	Attribute string
	Value     float64
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("linalg: invalid vector attribute %s=%g", e.Attribute, e.Value)
}

// Unwrap lets errors.Is(err, ErrInvalidAttribute) match.
func (e *InvalidAttributeError) Unwrap() error { return ErrInvalidAttribute }

// Operation tags for uniform error wrapping.
const (
	opVectorDiv       = "Vector3D.Div"
	opVectorDivAssign = "Vector3D.DivAssign"
	opVectorDivMatrix = "Vector3D.DivMatrix"
	opFrameDiv        = "FrameVector.Div"
	opFromCylindrical = "FromCylindrical"
	opFromSpherical   = "FromSpherical"
	opUnit            = "Unit"
	opUnmarshalVector = "Vector3D.UnmarshalJSON"
	opMatDiv          = "Mat3D.Div"
	opMatDivMatrix    = "Mat3D.DivMatrix"
	opScalarDiv       = "ScalarDiv"
	opInverse         = "Mat3D.Inverse"
	opFromMatrix      = "FromMatrix"
	opFromVector      = "FromVector"
	opUnmarshalMatrix = "Mat3D.UnmarshalJSON"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Only call with a non-nil err.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
