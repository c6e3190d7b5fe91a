package timeutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"

	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/unit"
)

func TestDefaults(t *testing.T) {
	want := Settings{
		Locale:           locale.Default(),
		IncludeTime:      true,
		TimeFormat:       Clock12h,
		MaxUnit:          unit.Year,
		JustNowThreshold: 30,
		UseWords:         true,
		CustomThresholds: map[unit.Unit]float64{},
	}
	if diff := cmp.Diff(want, Options{}.Settings()); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}
}

func TestSettings_Precedence(t *testing.T) {
	s := Options{
		Preset:           PresetSocial,
		IncludeTime:      ptr.To(true),
		CustomThresholds: map[unit.Unit]float64{unit.Day: 43200},
	}.Settings()

	assert.True(t, s.IncludeTime, "explicit option beats preset")
	assert.True(t, s.FuzzyMatching, "preset beats default")
	assert.Equal(t, unit.Week, s.MaxUnit)
	assert.Equal(t, Clock12h, s.TimeFormat, "default kept when preset is silent")
	assert.Equal(t, 43200.0, s.threshold(unit.Day))
	assert.Equal(t, unit.Hour.Threshold(), s.threshold(unit.Hour))
}

func TestSettings_UnknownPresetIgnored(t *testing.T) {
	s := Options{Preset: "verbose"}.Settings()
	assert.Equal(t, Defaults().JustNowThreshold, s.JustNowThreshold)
}

func TestPresetOptions(t *testing.T) {
	for _, p := range Presets() {
		o, ok := PresetOptions(p)
		assert.True(t, ok, p)
		assert.NotNil(t, o.JustNowThreshold, p)
	}
	_, ok := PresetOptions("nope")
	assert.False(t, ok)

	s := Options{Preset: PresetCompact}.Settings()
	assert.Equal(t, 0.0, s.JustNowThreshold)
	assert.Equal(t, unit.Day, s.MaxUnit)
	assert.False(t, s.IncludeTime)
}
