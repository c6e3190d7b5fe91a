// Package validation checks locales, format options and moments ahead of
// formatting. Results carry field-scoped errors and free-form warnings; only
// errors make a result invalid.
//
// Runtime validation of every Format call is off by default. Turn it on with
// SetRuntimeValidation and install Hook on a formatter:
//
//	f := timeutil.New(timeutil.WithValidator(validation.Hook{}))
//	validation.SetRuntimeValidation(true)
package validation

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strings"
	"sync/atomic"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/timeutil"
	"github.com/ahmetb/friendly-dates/internal/unit"
)

// Result is the outcome of a validation.
type Result struct {
	Errors   field.ErrorList
	Warnings []string
}

// Valid reports whether no errors were found.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Err aggregates the errors, or returns nil when there are none.
func (r Result) Err() error {
	if agg := r.Errors.ToAggregate(); agg != nil {
		return agg
	}
	return nil
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// LocaleResult is the outcome of validating a locale.
type LocaleResult struct {
	Result
	// LocaleID is the id of the checked locale, or "unknown".
	LocaleID string
	// MissingKeys and ExtraKeys are dotted key paths. They are only
	// populated when validating a raw document.
	MissingKeys []string
	ExtraKeys   []string
}

var localeIDPattern = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)

// ValidateLocale checks that cfg carries every phrase needed to render any
// output.
func ValidateLocale(cfg *locale.Config) LocaleResult {
	res := LocaleResult{LocaleID: "unknown"}
	if cfg == nil {
		res.Errors = append(res.Errors, field.Required(field.NewPath("locale"), "locale is nil"))
		return res
	}
	if cfg.ID != "" {
		res.LocaleID = cfg.ID
	}

	var errs field.ErrorList
	switch {
	case strings.TrimSpace(cfg.ID) == "":
		errs = append(errs, field.Required(field.NewPath("id"), "cannot be empty"))
	case !localeIDPattern.MatchString(cfg.ID):
		errs = append(errs, field.Invalid(field.NewPath("id"), cfg.ID, "must look like xx-XX, e.g. en-US"))
	}
	if strings.TrimSpace(cfg.Name) == "" {
		errs = append(errs, field.Required(field.NewPath("name"), "cannot be empty"))
	}
	if cfg.Direction != "" && cfg.Direction != locale.LTR && cfg.Direction != locale.RTL {
		errs = append(errs, field.NotSupported(field.NewPath("direction"), cfg.Direction,
			[]string{string(locale.LTR), string(locale.RTL)}))
	}

	for _, u := range unit.All() {
		errs = append(errs, requireText(field.NewPath("units", u.String()), cfg.Units.Name(u))...)
		errs = append(errs, requireText(field.NewPath("unitsPlural", u.String()), cfg.UnitsPlural.Name(u))...)
	}
	for _, p := range phraseFields(cfg.Relative) {
		errs = append(errs, requireText(field.NewPath("relative", p.key), p.value)...)
	}

	errs = append(errs, requireNames(field.NewPath("days"), cfg.Days, 7)...)
	errs = append(errs, requireNames(field.NewPath("months"), cfg.Months, 12)...)

	if nf := cfg.NumberFormat; nf != nil {
		nfPath := field.NewPath("numberFormat")
		if nf.DecimalSeparator == "" {
			res.warnf("%s is empty", nfPath.Child("decimalSeparator"))
		}
		if nf.ThousandsSeparator != "" && nf.ThousandsSeparator == nf.DecimalSeparator {
			errs = append(errs, field.Invalid(nfPath.Child("decimalSeparator"), nf.DecimalSeparator,
				"must differ from thousandsSeparator"))
		}
	}

	res.Errors = errs
	return res
}

func requireText(p *field.Path, v string) field.ErrorList {
	if strings.TrimSpace(v) == "" {
		return field.ErrorList{field.Required(p, "cannot be empty")}
	}
	return nil
}

func requireNames(p *field.Path, n locale.Names, want int) field.ErrorList {
	var errs field.ErrorList
	for _, list := range []struct {
		name   string
		values []string
	}{{"short", n.Short}, {"long", n.Long}} {
		lp := p.Child(list.name)
		if len(list.values) != want {
			errs = append(errs, field.Invalid(lp, len(list.values), fmt.Sprintf("must have exactly %d entries", want)))
			continue
		}
		for i, v := range list.values {
			errs = append(errs, requireText(lp.Index(i), v)...)
		}
	}
	return errs
}

type phrase struct {
	key, value string
}

// phraseFields lists the relative phrases by their document key.
func phraseFields(p locale.Phrases) []phrase {
	return []phrase{
		{"just", p.Just},
		{"past", p.Past},
		{"future", p.Future},
		{"yesterday", p.Yesterday},
		{"tomorrow", p.Tomorrow},
		{"previous", p.Previous},
		{"next", p.Next},
		{"at", p.At},
		{"about", p.About},
		{"thisWeek", p.ThisWeek},
		{"lastWeek", p.LastWeek},
		{"nextWeek", p.NextWeek},
		{"thisMonth", p.ThisMonth},
		{"lastMonth", p.LastMonth},
		{"nextMonth", p.NextMonth},
		{"thisYear", p.ThisYear},
		{"lastYear", p.LastYear},
		{"nextYear", p.NextYear},
	}
}

// ValidateFormatOptions checks option values that the engine would otherwise
// silently ignore or misinterpret.
func ValidateFormatOptions(o timeutil.Options) Result {
	var res Result
	if o.TimeFormat != "" && o.TimeFormat != timeutil.Clock12h && o.TimeFormat != timeutil.Clock24h {
		res.Errors = append(res.Errors, field.NotSupported(field.NewPath("timeFormat"), o.TimeFormat,
			[]string{string(timeutil.Clock12h), string(timeutil.Clock24h)}))
	}
	if o.MaxUnit != nil && !o.MaxUnit.Valid() {
		res.Errors = append(res.Errors, field.NotSupported(field.NewPath("maxUnit"), o.MaxUnit.String(), unitNames()))
	}
	if th := o.JustNowThreshold; th != nil && (*th < 0 || math.IsNaN(*th)) {
		res.Errors = append(res.Errors, field.Invalid(field.NewPath("justNowThreshold"), *th,
			"must be a non-negative number"))
	}
	for _, u := range slices.Sorted(maps.Keys(o.CustomThresholds)) {
		v := o.CustomThresholds[u]
		if !u.Valid() {
			res.warnf("invalid time unit in customThresholds: %s", u)
		}
		if v < 0 || math.IsNaN(v) {
			res.warnf("invalid threshold value for %s: must be a non-negative number", u)
		}
	}
	if o.Preset != "" {
		if _, ok := timeutil.PresetOptions(o.Preset); !ok {
			var valid []string
			for _, p := range timeutil.Presets() {
				valid = append(valid, string(p))
			}
			res.Errors = append(res.Errors, field.NotSupported(field.NewPath("preset"), o.Preset, valid))
		}
	}
	if o.Locale != nil {
		if lr := ValidateLocale(o.Locale); !lr.Valid() {
			res.Errors = append(res.Errors, field.Invalid(field.NewPath("locale"), lr.LocaleID,
				fmt.Sprintf("invalid locale configuration: %v", lr.Err())))
		}
	}
	return res
}

func unitNames() []string {
	var names []string
	for _, u := range unit.All() {
		names = append(names, u.String())
	}
	return names
}

// ValidateDate checks that v is a usable moment and warns about years
// outside 1900-2100.
func ValidateDate(v any) Result {
	var res Result
	p := field.NewPath("date")
	if v == nil {
		res.Errors = append(res.Errors, field.Required(p, "date cannot be nil"))
		return res
	}
	t, err := timeutil.ParseMoment(v, nil)
	if err != nil {
		res.Errors = append(res.Errors, field.Invalid(p, v, err.Error()))
		return res
	}
	if y := t.Year(); y < 1900 || y > 2100 {
		res.warnf("date is outside reasonable range (1900-2100): year %d", y)
	}
	return res
}

var runtimeValidation atomic.Bool

// SetRuntimeValidation turns Hook on or off process-wide.
func SetRuntimeValidation(enabled bool) {
	runtimeValidation.Store(enabled)
}

// RuntimeValidationEnabled reports the process-wide switch.
func RuntimeValidationEnabled() bool {
	return runtimeValidation.Load()
}

// Hook validates Format inputs while runtime validation is enabled.
type Hook struct{}

var _ timeutil.Validator = Hook{}

// ValidateInputs implements timeutil.Validator.
func (Hook) ValidateInputs(target any, opts timeutil.Options) error {
	if !RuntimeValidationEnabled() {
		return nil
	}
	if r := ValidateDate(target); !r.Valid() {
		klog.V(4).InfoS("rejected date", "errors", len(r.Errors))
		return fmt.Errorf("date validation failed: %w", r.Err())
	}
	if r := ValidateFormatOptions(opts); !r.Valid() {
		klog.V(4).InfoS("rejected options", "errors", len(r.Errors))
		return fmt.Errorf("options validation failed: %w", r.Err())
	}
	return nil
}
