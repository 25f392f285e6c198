// SPDX-License-Identifier: MIT

// Package linalg - JSON encoding.
//
// Vector3D is externally tagged by frame, one key per document:
//
//	{"cartesian":{"x":1,"y":2,"z":3}}
//	{"cylindrical":{"rho":1,"phi":0.5,"z":2}}
//	{"spherical":{"r":1,"phi":0.5,"theta":0.1}}
//
// Mat3D is a row-major array of rows: [[1,0,0],[0,1,0],[0,0,1]].
//
// Decoding routes through the validating constructors, so a decoded value
// satisfies the same invariants as a constructed one. Finite values round
// trip exactly.

package linalg

import (
	"encoding/json"
	"fmt"
)

type vectorJSON struct {
	Cartesian   *CartesianRecord   `json:"cartesian,omitempty"`
	Cylindrical *CylindricalRecord `json:"cylindrical,omitempty"`
	Spherical   *SphericalRecord   `json:"spherical,omitempty"`
}

var (
	_ json.Marshaler   = Vector3D{}
	_ json.Unmarshaler = (*Vector3D)(nil)
	_ json.Marshaler   = Mat3D{}
	_ json.Unmarshaler = (*Mat3D)(nil)
)

// MarshalJSON encodes v under its frame key.
func (v Vector3D) MarshalJSON() ([]byte, error) {
	var doc vectorJSON
	switch v.kind {
	case KindCylindrical:
		r := v.Cylindrical()
		doc.Cylindrical = &r
	case KindSpherical:
		r := v.Spherical()
		doc.Spherical = &r
	default:
		r := v.Cartesian()
		doc.Cartesian = &r
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes exactly one frame key.
// Returns ErrConversion when zero or several frames are present, and
// ErrInvalidAttribute when the record violates its frame's domain.
// A JSON null leaves v unchanged.
func (v *Vector3D) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var doc vectorJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return linalgErrorf(opUnmarshalVector, fmt.Errorf("%w: %v", ErrConversion, err))
	}

	var (
		out   Vector3D
		err   error
		count int
	)
	if doc.Cartesian != nil {
		out, count = doc.Cartesian.Vector(), count+1
	}
	if doc.Cylindrical != nil {
		out, err = doc.Cylindrical.Vector()
		count++
	}
	if doc.Spherical != nil {
		out, err = doc.Spherical.Vector()
		count++
	}
	if count != 1 {
		return linalgErrorf(opUnmarshalVector, fmt.Errorf("%w: want exactly one frame, got %d", ErrConversion, count))
	}
	if err != nil {
		return linalgErrorf(opUnmarshalVector, err)
	}
	*v = out

	return nil
}

// MarshalJSON encodes m as an array of three rows.
func (m Mat3D) MarshalJSON() ([]byte, error) { return json.Marshal(m.a) }

// UnmarshalJSON decodes an array of three rows of three numbers.
// Returns ErrConversion for malformed input and ErrDimensionMismatch for a
// wrong shape. A JSON null leaves m unchanged.
func (m *Mat3D) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return linalgErrorf(opUnmarshalMatrix, fmt.Errorf("%w: %v", ErrConversion, err))
	}
	if len(rows) != dim {
		return linalgErrorf(opUnmarshalMatrix, fmt.Errorf("%w: %d rows", ErrDimensionMismatch, len(rows)))
	}
	var out Mat3D
	for i, row := range rows {
		if len(row) != dim {
			return linalgErrorf(opUnmarshalMatrix, fmt.Errorf("%w: row %d has %d entries", ErrDimensionMismatch, i, len(row)))
		}
		copy(out.a[i][:], row)
	}
	*m = out

	return nil
}
