package timeutil

import (
	"time"

	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/unit"
)

// startOfDay returns local midnight of t in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// weekBounds returns the Sunday-to-Saturday week containing ref, shifted by
// offset weeks. end is the last millisecond of the Saturday.
func weekBounds(ref time.Time, offset int) (start, end time.Time) {
	start = startOfDay(ref).AddDate(0, 0, -int(ref.Weekday())+7*offset)
	y, m, d := start.Date()
	end = time.Date(y, m, d+6, 23, 59, 59, int(999*time.Millisecond), start.Location())
	return start, end
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// dateRange names the calendar range target falls into relative to ref,
// checking weeks, then months, then years. It reports false when target is
// more than a year away.
func dateRange(target, ref time.Time, cfg *locale.Config) (string, unit.Unit, bool) {
	p := cfg.Relative
	weeks := []struct {
		offset int
		phrase string
	}{{0, p.ThisWeek}, {-1, p.LastWeek}, {1, p.NextWeek}}
	for _, w := range weeks {
		if start, end := weekBounds(ref, w.offset); within(target, start, end) {
			return w.phrase, unit.Week, true
		}
	}

	switch {
	case sameMonth(target, ref):
		return p.ThisMonth, unit.Month, true
	case sameMonth(target, ref.AddDate(0, -1, 0)):
		return p.LastMonth, unit.Month, true
	case sameMonth(target, ref.AddDate(0, 1, 0)):
		return p.NextMonth, unit.Month, true
	}

	switch target.Year() - ref.Year() {
	case 0:
		return p.ThisYear, unit.Year, true
	case -1:
		return p.LastYear, unit.Year, true
	case 1:
		return p.NextYear, unit.Year, true
	}
	return "", 0, false
}

// nameAt returns names[i] when present and non-empty.
func nameAt(names []string, i int) (string, bool) {
	if i < 0 || i >= len(names) || names[i] == "" {
		return "", false
	}
	return names[i], true
}
