package timeutil

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoment(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", ref, ref},
		{"time pointer", &ref, ref},
		{"date only is utc", "2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"datetime without zone uses location", "2024-03-01T08:30", time.Date(2024, 3, 1, 8, 30, 0, 0, tokyo)},
		{"datetime with z", "2024-03-01T08:30:15.250Z", time.Date(2024, 3, 1, 8, 30, 15, 250e6, time.UTC)},
		{"space separator with offset", "2024-03-01 08:30:00-05:00", time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC)},
		{"compact offset", "2024-03-01T08:30:00+0530", time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC)},
		{"lower case separator", "2001-12-14t21:59:43.10-05:00", time.Date(2001, 12, 15, 2, 59, 43, 100e6, time.UTC)},
		{"single digit fields", "2006-1-2 15:4:5", time.Date(2006, 1, 2, 15, 4, 5, 0, tokyo)},
		{"leap day", "2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"rfc1123", "Mon, 15 Jan 2024 12:00:00 GMT", ref},
		{"epoch int", int(ref.UnixMilli()), ref},
		{"epoch int64", ref.UnixMilli(), ref},
		{"epoch float truncates", float64(ref.UnixMilli()) + 0.9, ref},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoment(tt.in, tokyo)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseMoment_Invalid(t *testing.T) {
	var nilTime *time.Time
	tests := []struct {
		name   string
		in     any
		reason string
	}{
		{"nil", nil, "moment is nil"},
		{"nil pointer", nilTime, "zero time"},
		{"zero", time.Time{}, "zero time"},
		{"february 30", "2024-02-30", "not a calendar date"},
		{"not a leap year", "2023-02-29", "not a calendar date"},
		{"month 13", "2024-13-01", "not a calendar date"},
		{"hour 25", "2024-01-01T25:00:00Z", "not a valid time of day"},
		{"bad offset", "2024-01-01T10:00:00+25:00", "bad zone offset"},
		{"garbage", "yesterday-ish", "cannot parse"},
		{"nan", math.NaN(), "out of range"},
		{"too far", 9e15, "out of range"},
		{"bool", true, "unsupported moment type bool"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMoment(tt.in, time.UTC)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDate)
			assert.ErrorContains(t, err, tt.reason)
		})
	}
}
