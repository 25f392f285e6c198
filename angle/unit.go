// SPDX-License-Identifier: MIT

// Package angle - angular units and the static conversion table.
//
// Purpose:
//   - Map every supported unit to its size in radians from ONE table.
//   - Keep conversions a single multiply+divide; no per-pair code.
//
// Notes:
//   - Time units (Hour, Minute, Second) are angles of right ascension:
//     24h = 360°, so 1h = 15°.

package angle

import (
	"fmt"
	"math"
	"strings"
)

// Unit identifies an angular unit.
type Unit uint8

// Supported units. The zero value is Radian.
const (
	Radian Unit = iota
	Degree
	ArcMinute
	ArcSecond
	Hour
	Minute
	Second
	Revolution
)

// unitInfo is one row of the conversion table.
type unitInfo struct {
	name    string  // canonical lower-case name, also accepted by ParseUnit
	symbol  string  // short symbol, also accepted by ParseUnit
	radians float64 // size of one unit in radians
}

// units is indexed by Unit; order MUST match the const block above.
var units = [...]unitInfo{
	Radian:     {name: "radian", symbol: "rad", radians: 1},
	Degree:     {name: "degree", symbol: "deg", radians: math.Pi / 180},
	ArcMinute:  {name: "arcminute", symbol: "arcmin", radians: math.Pi / (180 * 60)},
	ArcSecond:  {name: "arcsecond", symbol: "arcsec", radians: math.Pi / (180 * 3600)},
	Hour:       {name: "hour", symbol: "h", radians: math.Pi / 12},
	Minute:     {name: "minute", symbol: "m", radians: math.Pi / (12 * 60)},
	Second:     {name: "second", symbol: "s", radians: math.Pi / (12 * 3600)},
	Revolution: {name: "revolution", symbol: "rev", radians: TwoPi},
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool { return int(u) < len(units) }

// String returns the canonical unit name.
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}

	return units[u].name
}

// Symbol returns the short unit symbol ("rad", "deg", "h", ...).
func (u Unit) Symbol() string {
	if !u.Valid() {
		return "?"
	}

	return units[u].symbol
}

// Radians returns the size of one u in radians, or NaN for an unknown unit.
func (u Unit) Radians() float64 {
	if !u.Valid() {
		return math.NaN()
	}

	return units[u].radians
}

// ParseUnit resolves a unit from its name or symbol (case-insensitive).
// Plural names ("degrees") are accepted.
func ParseUnit(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, info := range units {
		if key == info.name || key == info.name+"s" || key == info.symbol {
			return Unit(i), nil
		}
	}

	return 0, fmt.Errorf("ParseUnit(%q): %w", s, ErrUnknownUnit)
}

// Convert expresses value, given in unit from, in unit to.
// Unknown units yield NaN.
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}

	return value * from.Radians() / to.Radians()
}

// ToRadians is shorthand for Convert(value, from, Radian).
func ToRadians(value float64, from Unit) float64 { return Convert(value, from, Radian) }

// FromRadians is shorthand for Convert(rad, Radian, to).
func FromRadians(rad float64, to Unit) float64 { return Convert(rad, Radian, to) }
