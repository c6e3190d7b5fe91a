package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ahmetb/friendly-dates/internal/locale"
)

func TestRenderCount(t *testing.T) {
	en := locale.Default()
	assert.Equal(t, "a", renderCount(1, true, en))
	assert.Equal(t, "ten", renderCount(10, true, en))
	assert.Equal(t, "11", renderCount(11, true, en))
	assert.Equal(t, "0", renderCount(0, true, en))
	assert.Equal(t, "3", renderCount(3, false, en))
	assert.Equal(t, "1,234,567", renderCount(1234567, false, en))
	assert.Equal(t, "1234567", renderCount(1234567, false, &locale.Config{}))
}

func TestGroupDigits(t *testing.T) {
	dot := &locale.NumberFormat{ThousandsSeparator: ".", DecimalSeparator: ","}
	tests := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1.000",
		"123456":     "123.456",
		"-1234567":   "-1.234.567",
		"1234.5":     "1.234,5",
		"1234567.25": "1.234.567,25",
	}
	for in, want := range tests {
		assert.Equal(t, want, groupDigits(in, dot), in)
	}
	assert.Equal(t, "1234.5", groupDigits("1234.5", nil))
}

func TestRoundHalfUp(t *testing.T) {
	assert.EqualValues(t, 2, roundHalfUp(1.5))
	assert.EqualValues(t, 1, roundHalfUp(1.49))
	assert.EqualValues(t, -1, roundHalfUp(-1.5))
	assert.EqualValues(t, -2, roundHalfUp(-1.51))
	assert.EqualValues(t, 0, roundHalfUp(-0.4))
}

func TestFormatTimeOfDay(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC) }
	assert.Equal(t, "12:00 AM", formatTimeOfDay(at(0, 0), Clock12h))
	assert.Equal(t, "12:30 PM", formatTimeOfDay(at(12, 30), Clock12h))
	assert.Equal(t, "1:05 PM", formatTimeOfDay(at(13, 5), Clock12h))
	assert.Equal(t, "9:05 AM", formatTimeOfDay(at(9, 5), ""))
	assert.Equal(t, "0:00", formatTimeOfDay(at(0, 0), Clock24h))
	assert.Equal(t, "23:59", formatTimeOfDay(at(23, 59), Clock24h))
}

func TestWrapAccessible(t *testing.T) {
	target := time.Date(2024, 1, 15, 7, 0, 0, 0, time.FixedZone("", -5*3600))
	assert.Equal(t,
		`<time datetime="2024-01-15T12:00:00.000Z" aria-label="in three days">in 3 days</time>`,
		wrapAccessible("in 3 days", target))
	assert.Equal(t,
		`<time datetime="2024-01-15T12:00:00.000Z" aria-label="4 days ago">4 days ago</time>`,
		wrapAccessible("4 days ago", target))
	assert.Equal(t,
		`<time datetime="2024-01-15T12:00:00.000Z" aria-label="one hour, 2 minutes">1 hour, 2 minutes</time>`,
		wrapAccessible("1 hour, 2 minutes", target))
}
