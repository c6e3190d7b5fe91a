package timeutil

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/unit"
)

// Bucket identifies which rule produced a phrase.
type Bucket string

const (
	BucketJustNow     Bucket = "just-now"
	BucketMillisecond Bucket = "millisecond"
	BucketToday       Bucket = "today"
	BucketYesterday   Bucket = "yesterday"
	BucketTomorrow    Bucket = "tomorrow"
	BucketRange       Bucket = "range"
	BucketWeekday     Bucket = "weekday"
	BucketCascade     Bucket = "cascade"
	BucketCalendar    Bucket = "calendar"
	BucketFallback    Bucket = "fallback"
)

// Result is a rendered phrase together with how it was derived.
type Result struct {
	Text   string
	Bucket Bucket
	// Unit and Count describe the magnitude shown, after fuzzy rounding.
	// Named-day phrases use unit.Day and the distance in days.
	Unit  unit.Unit
	Count int64
	Past  bool
	Fuzzy bool
	// Locale is the id of the locale that supplied the words.
	Locale string
}

// Validator checks the raw inputs of a call before any work is done.
type Validator interface {
	ValidateInputs(target any, opts Options) error
}

// Formatter renders relative time phrases. The zero value is not usable;
// create one with New. A Formatter is safe for concurrent use.
type Formatter struct {
	clock     clock.PassiveClock
	location  *time.Location
	validator Validator
}

// FormatterOption customizes a Formatter.
type FormatterOption func(*Formatter)

// WithClock sets the clock used when no reference moment is given.
func WithClock(c clock.PassiveClock) FormatterOption {
	return func(f *Formatter) { f.clock = c }
}

// WithLocation sets the location used for calendar comparisons when the
// reference carries none, and for zone-less date-time strings.
func WithLocation(loc *time.Location) FormatterOption {
	return func(f *Formatter) { f.location = loc }
}

// WithValidator runs v against the inputs of every call.
func WithValidator(v Validator) FormatterOption {
	return func(f *Formatter) { f.validator = v }
}

// New returns a Formatter using the real clock and time.Local.
func New(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		clock:    clock.RealClock{},
		location: time.Local,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Format returns the phrase describing target relative to reference. A nil
// reference means the formatter clock's current time.
func (f *Formatter) Format(target, reference any, opts Options) (string, error) {
	res, err := f.Resolve(target, reference, opts)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Resolve is like Format but also reports how the phrase was derived.
func (f *Formatter) Resolve(target, reference any, opts Options) (Result, error) {
	if f.validator != nil {
		if err := f.validator.ValidateInputs(target, opts); err != nil {
			return Result{}, &InputError{Value: target, Reason: "validation failed", Err: err}
		}
	}
	t, err := ParseMoment(target, f.location)
	if err != nil {
		return Result{}, err
	}
	var ref time.Time
	if reference == nil {
		ref = f.clock.Now().In(f.location)
	} else if ref, err = ParseMoment(reference, f.location); err != nil {
		return Result{}, err
	}

	r := newResolver(t, ref, opts.Settings())
	res := r.resolve()
	klog.V(5).InfoS("resolved relative time",
		"target", t, "reference", ref, "bucket", res.Bucket, "unit", res.Unit, "count", res.Count, "text", res.Text)
	return res, nil
}

var defaultFormatter = New()

// Format renders target relative to reference with the default formatter.
func Format(target, reference any, opts Options) (string, error) {
	return defaultFormatter.Format(target, reference, opts)
}

// Resolve resolves target relative to reference with the default formatter.
func Resolve(target, reference any, opts Options) (Result, error) {
	return defaultFormatter.Resolve(target, reference, opts)
}

// resolver carries the state of a single Resolve call.
type resolver struct {
	s      Settings
	loc    *locale.Config
	target time.Time // in the reference's location
	ref    time.Time
	diffMs int64
	abs    int64 // |delta| in whole seconds
	past   bool
}

func newResolver(target, ref time.Time, s Settings) *resolver {
	diffMs := target.UnixMilli() - ref.UnixMilli()
	delta := roundHalfUp(float64(diffMs) / 1000)
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	return &resolver{
		s:      s,
		loc:    s.Locale,
		target: target.In(ref.Location()),
		ref:    ref,
		diffMs: diffMs,
		abs:    abs,
		past:   delta < 0,
	}
}

func (r *resolver) resolve() Result {
	if float64(r.abs) < r.s.JustNowThreshold {
		return r.result(BucketJustNow, unit.Second, r.abs, r.decorate(r.loc.Relative.Just))
	}
	if r.abs < 1 && r.s.MaxUnit == unit.Millisecond {
		ms := r.diffMs
		if ms < 0 {
			ms = -ms
		}
		return r.result(BucketMillisecond, unit.Millisecond, ms,
			wrapDirection(r.phrase(unit.Millisecond, ms, false, ""), r.loc))
	}

	today := startOfDay(r.ref)
	targetDay := startOfDay(r.target)
	switch {
	case sameDay(targetDay, today.AddDate(0, 0, -1)):
		return r.named(BucketYesterday, unit.Day, 1, r.loc.Relative.Yesterday)
	case sameDay(targetDay, today):
		return r.today()
	}

	if r.s.RelativeDateRanges {
		if phrase, u, ok := dateRange(r.target, r.ref, r.loc); ok {
			return r.named(BucketRange, u, 0, phrase)
		}
	}
	if sameDay(targetDay, today.AddDate(0, 0, 1)) {
		return r.named(BucketTomorrow, unit.Day, 1, r.loc.Relative.Tomorrow)
	}

	// Fixed-length days, so a DST transition rounds away.
	dayDiff := roundHalfUp(math.Abs(float64(targetDay.UnixMilli()-today.UnixMilli())) / unit.Day.Seconds() / 1000)
	if dayDiff < 7 {
		if name, ok := nameAt(r.loc.Days.Long, int(r.target.Weekday())); ok {
			word := r.loc.Relative.Next
			if r.past {
				word = r.loc.Relative.Previous
			}
			return r.named(BucketWeekday, unit.Day, dayDiff, word+" "+name)
		}
	}
	return r.cascade()
}

// today handles targets on the reference's calendar day.
func (r *resolver) today() Result {
	fuzzy := r.s.FuzzyMatching
	if r.abs < 60 {
		return r.result(BucketToday, unit.Second, r.abs, r.decorate(r.phrase(unit.Second, r.abs, false, "")))
	}
	if float64(r.abs) < r.s.threshold(unit.Hour) {
		minutes := roundHalfUp(float64(r.abs) / 60)
		if fuzzy {
			minutes = fuzz(minutes, unit.Minute)
		}
		return r.result(BucketToday, unit.Minute, minutes,
			r.decorate(r.phrase(unit.Minute, minutes, fuzzy && minutes > 1, "")))
	}
	hours := roundHalfUp(float64(r.abs) / 3600)
	if fuzzy {
		hours = fuzz(hours, unit.Hour)
	}
	suffix := ""
	if r.s.IncludeTime {
		suffix = r.atTime()
	}
	return r.result(BucketToday, unit.Hour, hours,
		r.decorate(r.phrase(unit.Hour, hours, fuzzy && hours >= 1, suffix)))
}

// cascade walks the units from MaxUnit down and picks the first one whose
// threshold the delta reaches, falling back to the finest unit.
func (r *resolver) cascade() Result {
	units := unit.Cascade()
	start := max(slices.Index(units, r.s.MaxUnit), 0)
	for i := start; i < len(units); i++ {
		u := units[i]
		th := r.s.threshold(u)
		if float64(r.abs) < th && i != len(units)-1 {
			continue
		}
		count := roundHalfUp(float64(r.abs) / th)
		if r.s.FuzzyMatching {
			count = fuzz(count, u)
		}
		if u == unit.Year && count > 5 {
			if month, ok := nameAt(r.loc.Months.Long, int(r.target.Month())-1); ok {
				text := fmt.Sprintf("%s %d, %d", month, r.target.Day(), r.target.Year())
				if r.s.IncludeTime {
					text += " " + r.atTime()
				}
				return r.result(BucketCalendar, u, count, text)
			}
		}
		return r.result(BucketCascade, u, count,
			r.decorate(r.phrase(u, count, r.s.FuzzyMatching && count > 1, "")))
	}
	return r.result(BucketFallback, r.s.MaxUnit, 0, r.target.Format("1/2/2006"))
}

// phrase assembles "[about] N unit ago" or "in [about] N unit", followed by
// suffix when given. Empty parts are skipped.
func (r *resolver) phrase(u unit.Unit, count int64, about bool, suffix string) string {
	name := r.loc.UnitsPlural.Name(u)
	if count == 1 {
		name = r.loc.Units.Name(u)
	}
	prefix := ""
	if about {
		prefix = r.loc.Relative.About
	}
	num := renderCount(count, r.s.UseWords, r.loc)
	var parts []string
	if r.past {
		parts = []string{prefix, num, name, r.loc.Relative.Past, suffix}
	} else {
		parts = []string{r.loc.Relative.Future, prefix, num, name, suffix}
	}
	return joinNonEmpty(parts)
}

// named renders a phrase that names a day or range, with the time of day
// appended when enabled.
func (r *resolver) named(b Bucket, u unit.Unit, count int64, phrase string) Result {
	if r.s.IncludeTime {
		phrase += " " + r.atTime()
	}
	return r.result(b, u, count, phrase)
}

func (r *resolver) atTime() string {
	return r.loc.Relative.At + " " + formatTimeOfDay(r.target, r.s.TimeFormat)
}

// decorate applies the directional and accessibility wrappers, in that order.
func (r *resolver) decorate(text string) string {
	text = wrapDirection(text, r.loc)
	if r.s.Accessibility {
		text = wrapAccessible(text, r.target)
	}
	return text
}

func (r *resolver) result(b Bucket, u unit.Unit, count int64, text string) Result {
	return Result{
		Text:   text,
		Bucket: b,
		Unit:   u,
		Count:  count,
		Past:   r.past,
		Fuzzy:  r.s.FuzzyMatching,
		Locale: r.loc.ID,
	}
}

// fuzz rounds a count to a friendlier value for the given unit.
func fuzz(v int64, u unit.Unit) int64 {
	switch {
	case u == unit.Minute && v >= 2 && v <= 5:
		return roundHalfUp(float64(v)/5) * 5
	case u == unit.Hour && v >= 2 && v <= 12:
		return roundHalfUp(float64(v)/2) * 2
	case u == unit.Day && v >= 2 && v <= 7,
		u == unit.Week && v >= 2 && v <= 4,
		u == unit.Month && v >= 2 && v <= 6:
		// counts are already whole, rounding keeps them as they are
		return roundHalfUp(float64(v))
	}
	return v
}

func joinNonEmpty(parts []string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
