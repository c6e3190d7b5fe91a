// Package unit defines the time units used by the relative time engine and
// their canonical durations.
package unit

import (
	"fmt"
	"strings"
)

// Unit is a relative time granularity, ordered from finest to coarsest.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
	Decade
)

var names = [...]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Quarter:     "quarter",
	Year:        "year",
	Decade:      "decade",
}

// constantSeconds is used for straight multiplication (e.g. day spans).
var constantSeconds = [...]float64{
	Millisecond: 0.001,
	Second:      1,
	Minute:      60,
	Hour:        3600,
	Day:         86400,
	Week:        604800,
	Month:       2592000,   // 30 days
	Quarter:     7776000,   // 90 days
	Year:        31536000,  // 365 days
	Decade:      315360000, // 10 x 365 days
}

// averageSeconds decides cascade boundaries. It intentionally disagrees with
// constantSeconds for month and longer units.
var averageSeconds = [...]float64{
	Millisecond: 0.001,
	Second:      1,
	Minute:      60,
	Hour:        3600,
	Day:         86400,
	Week:        604800,
	Month:       2629746,   // average month
	Quarter:     7889238,   // 3 average months
	Year:        31556952,  // average year
	Decade:      315569520, // 10 average years
}

// All returns every unit from finest to coarsest.
func All() []Unit {
	return []Unit{Millisecond, Second, Minute, Hour, Day, Week, Month, Quarter, Year, Decade}
}

// Cascade returns every unit from coarsest to finest, the order in which the
// unit cascade is walked.
func Cascade() []Unit {
	return []Unit{Decade, Year, Quarter, Month, Week, Day, Hour, Minute, Second, Millisecond}
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	return u >= Millisecond && u <= Decade
}

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return names[u]
}

// Seconds returns the fixed-length duration of u in seconds.
func (u Unit) Seconds() float64 {
	if !u.Valid() {
		return 0
	}
	return constantSeconds[u]
}

// Threshold returns the built-in cascade threshold of u in seconds.
func (u Unit) Threshold() float64 {
	if !u.Valid() {
		return 0
	}
	return averageSeconds[u]
}

// Parse returns the unit with the given name (case-insensitive).
func Parse(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for u, n := range names {
		if n == s {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("unknown time unit %q (valid units: %s)", s, strings.Join(names[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("invalid time unit %d", int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
