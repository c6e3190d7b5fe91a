package timeutil

import (
	"maps"

	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/unit"
)

// TimeFormat selects the clock rendering used when a time of day is shown.
type TimeFormat string

const (
	Clock12h TimeFormat = "12h"
	Clock24h TimeFormat = "24h"
)

// Preset names a bundle of option defaults.
type Preset string

const (
	PresetSocial        Preset = "social"
	PresetFormal        Preset = "formal"
	PresetCompact       Preset = "compact"
	PresetAccessibility Preset = "accessibility"
)

// Presets lists every known preset.
func Presets() []Preset {
	return []Preset{PresetSocial, PresetFormal, PresetCompact, PresetAccessibility}
}

// Options is a partial set of formatting options. Nil pointers, empty strings
// and empty maps mean "not set" and inherit from the preset (if any) and then
// from Defaults.
type Options struct {
	// Locale supplies every word of the output. Shared and read-only.
	Locale *locale.Config
	// IncludeTime appends the time of day to day-level phrases.
	IncludeTime *bool
	TimeFormat  TimeFormat
	// MaxUnit is the coarsest unit the unit cascade may pick.
	MaxUnit *unit.Unit
	// JustNowThreshold is in seconds. Deltas below it render as "just now".
	JustNowThreshold *float64
	// UseWords spells out counts 1 through 10.
	UseWords *bool
	// FuzzyMatching rounds counts to friendlier values and adds "about".
	FuzzyMatching *bool
	// CustomThresholds overrides cascade thresholds (in seconds) per unit.
	// It is merged key by key with the preset and default thresholds.
	CustomThresholds map[unit.Unit]float64
	Preset           Preset
	// Accessibility wraps phrases in a <time> element with an aria-label.
	Accessibility *bool
	// RelativeDateRanges enables "this week", "last month", etc.
	RelativeDateRanges *bool
}

// Settings is a fully resolved set of options.
type Settings struct {
	Locale             *locale.Config
	IncludeTime        bool
	TimeFormat         TimeFormat
	MaxUnit            unit.Unit
	JustNowThreshold   float64
	UseWords           bool
	FuzzyMatching      bool
	CustomThresholds   map[unit.Unit]float64
	Accessibility      bool
	RelativeDateRanges bool
}

// Defaults returns the baseline settings every call starts from.
func Defaults() Settings {
	return Settings{
		Locale:             locale.Default(),
		IncludeTime:        true,
		TimeFormat:         Clock12h,
		MaxUnit:            unit.Year,
		JustNowThreshold:   30,
		UseWords:           true,
		FuzzyMatching:      false,
		CustomThresholds:   map[unit.Unit]float64{},
		Accessibility:      false,
		RelativeDateRanges: false,
	}
}

var presets = map[Preset]Options{
	PresetSocial: {
		IncludeTime:        ptr.To(false),
		UseWords:           ptr.To(true),
		FuzzyMatching:      ptr.To(true),
		RelativeDateRanges: ptr.To(true),
		JustNowThreshold:   ptr.To(30.0),
		MaxUnit:            ptr.To(unit.Week),
	},
	PresetFormal: {
		IncludeTime:        ptr.To(true),
		UseWords:           ptr.To(false),
		FuzzyMatching:      ptr.To(false),
		RelativeDateRanges: ptr.To(false),
		TimeFormat:         Clock24h,
		JustNowThreshold:   ptr.To(5.0),
	},
	PresetCompact: {
		IncludeTime:        ptr.To(false),
		UseWords:           ptr.To(false),
		FuzzyMatching:      ptr.To(false),
		RelativeDateRanges: ptr.To(false),
		JustNowThreshold:   ptr.To(0.0),
		MaxUnit:            ptr.To(unit.Day),
	},
	PresetAccessibility: {
		IncludeTime:        ptr.To(true),
		UseWords:           ptr.To(true),
		FuzzyMatching:      ptr.To(false),
		RelativeDateRanges: ptr.To(true),
		Accessibility:      ptr.To(true),
		JustNowThreshold:   ptr.To(10.0),
	},
}

// PresetOptions returns the overlay a preset expands to.
func PresetOptions(p Preset) (Options, bool) {
	o, ok := presets[p]
	return o, ok
}

// Settings resolves o against the defaults. Precedence is
// defaults < preset < o, with CustomThresholds merged key by key. Neither o
// nor the preset table is modified.
func (o Options) Settings() Settings {
	s := Defaults()
	if o.Preset != "" {
		if p, ok := presets[o.Preset]; ok {
			s = p.overlay(s)
		} else {
			klog.V(2).InfoS("ignoring unknown preset", "preset", o.Preset)
		}
	}
	return o.overlay(s)
}

func (o Options) overlay(s Settings) Settings {
	if o.Locale != nil {
		s.Locale = o.Locale
	}
	s.IncludeTime = ptr.Deref(o.IncludeTime, s.IncludeTime)
	if o.TimeFormat != "" {
		s.TimeFormat = o.TimeFormat
	}
	s.MaxUnit = ptr.Deref(o.MaxUnit, s.MaxUnit)
	s.JustNowThreshold = ptr.Deref(o.JustNowThreshold, s.JustNowThreshold)
	s.UseWords = ptr.Deref(o.UseWords, s.UseWords)
	s.FuzzyMatching = ptr.Deref(o.FuzzyMatching, s.FuzzyMatching)
	if len(o.CustomThresholds) > 0 {
		merged := make(map[unit.Unit]float64, len(s.CustomThresholds)+len(o.CustomThresholds))
		maps.Copy(merged, s.CustomThresholds)
		maps.Copy(merged, o.CustomThresholds)
		s.CustomThresholds = merged
	}
	s.Accessibility = ptr.Deref(o.Accessibility, s.Accessibility)
	s.RelativeDateRanges = ptr.Deref(o.RelativeDateRanges, s.RelativeDateRanges)
	return s
}

// threshold returns the cascade threshold for u in seconds. Non-positive
// overrides are ignored.
func (s Settings) threshold(u unit.Unit) float64 {
	if v, ok := s.CustomThresholds[u]; ok && v > 0 {
		return v
	}
	return u.Threshold()
}

// Merge resolves opts against the defaults. It is shorthand for
// opts.Settings().
func Merge(opts Options) Settings {
	return opts.Settings()
}
