// SPDX-License-Identifier: MIT

// Package angle - sexagesimal (base-60) angle forms.
//
// DMS is degrees/arcminutes/arcseconds, HMS is hours/minutes/seconds of
// right ascension. Both store the sign separately so that −0°30′ is
// representable.

package angle

import (
	"fmt"
	"math"
)

// DMS is an angle split into degrees, arcminutes and arcseconds.
type DMS struct {
	Negative bool
	Degrees  int
	Minutes  int
	Seconds  float64
}

// HMS is an angle split into hours, minutes and seconds (1h = 15°).
type HMS struct {
	Negative bool
	Hours    int
	Minutes  int
	Seconds  float64
}

// NewDMS builds a checked DMS value.
// Returns ErrInvalidComponent if any component is negative, or if minutes
// or seconds are not below 60.
func NewDMS(negative bool, degrees, minutes int, seconds float64) (DMS, error) {
	if err := checkSexagesimal(degrees, minutes, seconds); err != nil {
		return DMS{}, fmt.Errorf("NewDMS(%d,%d,%g): %w", degrees, minutes, seconds, err)
	}

	return DMS{Negative: negative, Degrees: degrees, Minutes: minutes, Seconds: seconds}, nil
}

// NewHMS builds a checked HMS value. Same rules as NewDMS.
func NewHMS(negative bool, hours, minutes int, seconds float64) (HMS, error) {
	if err := checkSexagesimal(hours, minutes, seconds); err != nil {
		return HMS{}, fmt.Errorf("NewHMS(%d,%d,%g): %w", hours, minutes, seconds, err)
	}

	return HMS{Negative: negative, Hours: hours, Minutes: minutes, Seconds: seconds}, nil
}

// DMSFromRadians splits rad into degrees, arcminutes and arcseconds.
func DMSFromRadians(rad float64) DMS {
	neg, whole, minutes, seconds := split60(FromRadians(rad, Degree))

	return DMS{Negative: neg, Degrees: whole, Minutes: minutes, Seconds: seconds}
}

// HMSFromRadians splits rad into hours, minutes and seconds.
func HMSFromRadians(rad float64) HMS {
	neg, whole, minutes, seconds := split60(FromRadians(rad, Hour))

	return HMS{Negative: neg, Hours: whole, Minutes: minutes, Seconds: seconds}
}

// Radians returns the angle in radians.
func (d DMS) Radians() float64 {
	return ToRadians(join60(d.Negative, d.Degrees, d.Minutes, d.Seconds), Degree)
}

// Radians returns the angle in radians.
func (h HMS) Radians() float64 {
	return ToRadians(join60(h.Negative, h.Hours, h.Minutes, h.Seconds), Hour)
}

// String renders d as ±D°MM′SS.sss″, rounded to the millisecond of arc.
func (d DMS) String() string {
	whole, minutes, millis := roundMillis(d.Degrees, d.Minutes, d.Seconds)

	return fmt.Sprintf("%s%d°%02d′%02d.%03d″", sign(d.Negative), whole, minutes, millis/1000, millis%1000)
}

// String renders h as [-]HHhMMmSS.sss, rounded to the millisecond of time.
func (h HMS) String() string {
	s := ""
	if h.Negative {
		s = "-"
	}
	whole, minutes, millis := roundMillis(h.Hours, h.Minutes, h.Seconds)

	return fmt.Sprintf("%s%02dh%02dm%02d.%03ds", s, whole, minutes, millis/1000, millis%1000)
}

// roundMillis rounds seconds to whole milliseconds and carries overflow
// into minutes and the leading component.
func roundMillis(whole, minutes int, seconds float64) (int, int, int) {
	total := int64(whole)*3_600_000 + int64(minutes)*60_000 + int64(math.Round(seconds*1000))

	return int(total / 3_600_000), int(total / 60_000 % 60), int(total % 60_000)
}

func checkSexagesimal(whole, minutes int, seconds float64) error {
	if whole < 0 || minutes < 0 || minutes >= 60 {
		return ErrInvalidComponent
	}
	// NaN fails both comparisons, so test the valid range positively.
	if !(seconds >= 0 && seconds < 60) {
		return ErrInvalidComponent
	}

	return nil
}

// split60 breaks value into sign, whole units, minutes and seconds.
// Seconds that round up to 60 carry into minutes.
func split60(value float64) (neg bool, whole, minutes int, seconds float64) {
	neg = value < 0
	value = math.Abs(value)

	wf, frac := math.Modf(value)
	mf, frac := math.Modf(frac * 60)
	seconds = frac * 60
	whole, minutes = int(wf), int(mf)

	// 269.99999999999997° must read as 270°, not 269°59′60″.
	if seconds >= 60-carryEpsilon {
		seconds = 0
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		whole++
	}

	return neg, whole, minutes, seconds
}

// carryEpsilon is the arcsecond residue treated as a full minute.
const carryEpsilon = 1e-9

func join60(neg bool, whole, minutes int, seconds float64) float64 {
	v := float64(whole) + float64(minutes)/60 + seconds/3600
	if neg {
		return -v
	}

	return v
}

func sign(neg bool) string {
	if neg {
		return "-"
	}

	return "+"
}
