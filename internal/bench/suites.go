package bench

import (
	"fmt"
	"time"

	"k8s.io/utils/ptr"

	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/timeutil"
	"github.com/ahmetb/friendly-dates/internal/unit"
)

// FormatFunc is the function under test, typically timeutil.Format or a
// Formatter's Format method.
type FormatFunc func(target, reference any, opts timeutil.Options) (string, error)

// Case is a single formatting call to benchmark.
type Case struct {
	Name      string
	Target    any
	Reference any
	Options   timeutil.Options
}

// Epoch is the fixed reference moment of the canned suites.
var Epoch = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func ago(seconds int64) time.Time {
	return Epoch.Add(-time.Duration(seconds) * time.Second)
}

// StandardCases covers each resolution path with default options plus a few
// option-heavy calls.
func StandardCases() []Case {
	hourAgo := ago(3600)
	return []Case{
		{Name: "Basic formatting (1 hour ago)", Target: hourAgo},
		{Name: "Basic formatting (1 day ago)", Target: ago(86400)},
		{Name: "Basic formatting (1 week ago)", Target: ago(604800)},
		{Name: "Basic formatting (1 month ago)", Target: ago(int64(unit.Month.Threshold()))},
		{Name: "Basic formatting (1 year ago)", Target: ago(int64(unit.Year.Threshold()))},
		{Name: "With complex options", Target: hourAgo, Options: timeutil.Options{
			IncludeTime:        ptr.To(true),
			UseWords:           ptr.To(true),
			FuzzyMatching:      ptr.To(true),
			RelativeDateRanges: ptr.To(true),
			Accessibility:      ptr.To(true),
		}},
		{Name: "With custom thresholds", Target: hourAgo, Options: timeutil.Options{
			CustomThresholds: map[unit.Unit]float64{unit.Minute: 30, unit.Hour: 1800, unit.Day: 43200},
		}},
		{Name: "Future date formatting", Target: ago(-3600)},
		{Name: "Very small time difference", Target: ago(-1)},
		{Name: "Very large time difference", Target: "1900-01-01"},
	}
}

// LocaleCases formats one hour ago in each of the given locales.
func LocaleCases(locales []*locale.Config) []Case {
	cases := make([]Case, 0, len(locales))
	for _, l := range locales {
		cases = append(cases, Case{
			Name:    "Locale: " + l.Name,
			Target:  ago(3600),
			Options: timeutil.Options{Locale: l},
		})
	}
	return cases
}

// PresetCases formats one hour ago with each preset.
func PresetCases() []Case {
	var cases []Case
	for _, p := range timeutil.Presets() {
		cases = append(cases, Case{
			Name:    "Preset: " + string(p),
			Target:  ago(3600),
			Options: timeutil.Options{Preset: p},
		})
	}
	return cases
}

// RunCases benchmarks each case in order. A case whose first call fails is
// reported as an error and stops the run.
func (r *Runner) RunCases(format FormatFunc, cases []Case, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		ref := c.Reference
		if ref == nil {
			ref = Epoch
		}
		if _, err := format(c.Target, ref, c.Options); err != nil {
			return results, fmt.Errorf("benchmark %q: %w", c.Name, err)
		}
		results = append(results, r.Run(c.Name, func() {
			_, _ = format(c.Target, ref, c.Options)
		}, opts))
	}
	return results, nil
}

// Standard runs StandardCases.
func (r *Runner) Standard(format FormatFunc, opts Options) ([]Result, error) {
	return r.RunCases(format, StandardCases(), opts)
}

// Locales runs LocaleCases for the given locales.
func (r *Runner) Locales(format FormatFunc, locales []*locale.Config, opts Options) ([]Result, error) {
	return r.RunCases(format, LocaleCases(locales), opts)
}

// Presets runs PresetCases.
func (r *Runner) Presets(format FormatFunc, opts Options) ([]Result, error) {
	return r.RunCases(format, PresetCases(), opts)
}
