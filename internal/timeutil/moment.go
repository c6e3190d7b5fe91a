package timeutil

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is matched by every error caused by an unusable moment.
var ErrInvalidDate = errors.New("invalid date provided")

// maxEpochMillis bounds numeric moments to +/-100,000,000 days around the
// Unix epoch.
const maxEpochMillis = 8.64e15

// InputError reports a moment that cannot be formatted.
type InputError struct {
	// Value is the offending input as supplied by the caller.
	Value  any
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *InputError) Error() string {
	msg := ErrInvalidDate.Error()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidDate) true for every InputError.
func (e *InputError) Is(target error) bool { return target == ErrInvalidDate }

func invalid(v any, format string, args ...any) error {
	return &InputError{Value: v, Reason: fmt.Sprintf(format, args...)}
}

// dateLike matches ISO-8601 style dates with an optional time of day and
// zone. Components are range-checked after parsing, not here.
var dateLike = regexp.MustCompile(`^([+-]?\d{4,6})-(\d{1,2})-(\d{1,2})` +
	`(?:[Tt ](\d{1,2}):(\d{1,2})(?::(\d{1,2})(?:[.,](\d{1,9}))?)?)?` +
	`\s*(Z|z|[+-]\d{2}(?::?\d{2})?)?$`)

// fallbackLayouts are tried for strings that are not ISO-8601 like.
var fallbackLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.UnixDate,
	time.RubyDate,
	time.ANSIC,
}

// ParseMoment converts a supported moment value into a time.Time.
//
// Accepted values are time.Time, *time.Time, strings (ISO-8601 like or one of
// the common RFC layouts) and integer or floating point milliseconds since the
// Unix epoch. The zero time.Time is treated as invalid. Date-only strings are
// interpreted in UTC; date-time strings without a zone are interpreted in loc.
func ParseMoment(v any, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	switch m := v.(type) {
	case nil:
		return time.Time{}, invalid(v, "moment is nil")
	case time.Time:
		if m.IsZero() {
			return time.Time{}, invalid(v, "zero time")
		}
		return m, nil
	case *time.Time:
		if m == nil || m.IsZero() {
			return time.Time{}, invalid(v, "zero time")
		}
		return *m, nil
	case string:
		return parseDateString(m, loc)
	case int:
		return fromEpochMillis(v, float64(m))
	case int64:
		return fromEpochMillis(v, float64(m))
	case float64:
		return fromEpochMillis(v, m)
	default:
		return time.Time{}, invalid(v, "unsupported moment type %T", v)
	}
}

func fromEpochMillis(v any, ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, invalid(v, "epoch milliseconds out of range")
	}
	return time.UnixMilli(int64(math.Trunc(ms))), nil
}

// parseDateString parses s and rejects values that the calendar would
// silently normalize, such as "2024-02-30".
func parseDateString(s string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	m := dateLike.FindStringSubmatch(trimmed)
	if m == nil {
		for _, layout := range fallbackLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, nil
			}
		}
		return time.Time{}, invalid(s, "cannot parse %q", s)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hasClock := m[4] != ""
	var hour, minute, sec, nsec int
	if hasClock {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		if m[6] != "" {
			sec, _ = strconv.Atoi(m[6])
		}
		if m[7] != "" {
			frac := (m[7] + "000000000")[:9]
			nsec, _ = strconv.Atoi(frac)
		}
	}

	zone := time.UTC
	switch {
	case m[8] != "":
		z, err := parseZone(m[8])
		if err != nil {
			return time.Time{}, &InputError{Value: s, Reason: "bad zone offset", Err: err}
		}
		zone = z
	case hasClock:
		zone = loc
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, zone)
	if hasClock && (t.Hour() != hour || t.Minute() != minute || t.Second() != sec) {
		return time.Time{}, invalid(s, "%02d:%02d:%02d is not a valid time of day", hour, minute, sec)
	}
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, invalid(s, "%04d-%02d-%02d is not a calendar date", year, month, day)
	}
	return t, nil
}

func parseZone(z string) (*time.Location, error) {
	if z == "Z" || z == "z" {
		return time.UTC, nil
	}
	sign := 1
	if z[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(z[1:], ":", "")
	hh, err := strconv.Atoi(digits[:2])
	if err != nil {
		return nil, err
	}
	mm := 0
	if len(digits) > 2 {
		if mm, err = strconv.Atoi(digits[2:]); err != nil {
			return nil, err
		}
	}
	if hh > 23 || mm > 59 {
		return nil, fmt.Errorf("offset %q out of range", z)
	}
	return time.FixedZone("", sign*(hh*3600+mm*60)), nil
}
