package bench

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
	"k8s.io/utils/ptr"

	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/timeutil"
)

// steppingFormat advances the fake clock by step on every call.
func steppingFormat(c *testingclock.FakeClock, step time.Duration) FormatFunc {
	return func(target, reference any, opts timeutil.Options) (string, error) {
		c.Step(step)
		return timeutil.Format(target, reference, opts)
	}
}

func TestRun(t *testing.T) {
	fake := testingclock.NewFakeClock(Epoch)
	r := NewRunner(fake)
	calls := 0
	res := r.Run("tick", func() {
		calls++
		fake.Step(2 * time.Millisecond)
	}, Options{Iterations: 50, Warmup: ptr.To(5)})

	assert.Equal(t, 55, calls)
	assert.Equal(t, "tick", res.Name)
	assert.Equal(t, 50, res.Iterations)
	assert.Equal(t, 100*time.Millisecond, res.Total)
	assert.Equal(t, 2*time.Millisecond, res.Average)
	assert.InDelta(t, 500, res.OpsPerSec, 0.001)
	assert.Nil(t, res.Memory)
	assert.Len(t, r.Results(), 1)
}

func TestRun_Defaults(t *testing.T) {
	fake := testingclock.NewFakeClock(Epoch)
	r := NewRunner(fake)
	calls := 0
	res := r.Run("noop", func() { calls++ }, Options{MeasureMemory: true})

	assert.Equal(t, DefaultIterations+DefaultWarmup, calls)
	assert.Zero(t, res.OpsPerSec, "no time elapsed on the fake clock")
	require.NotNil(t, res.Memory)
	assert.NotZero(t, res.Memory.Before)
}

func TestRunCases(t *testing.T) {
	fake := testingclock.NewFakeClock(Epoch)
	r := NewRunner(fake)
	format := steppingFormat(fake, time.Millisecond)
	opts := Options{Iterations: 10, Warmup: ptr.To(0)}

	std, err := r.Standard(format, opts)
	require.NoError(t, err)
	assert.Len(t, std, len(StandardCases()))
	assert.Equal(t, "Basic formatting (1 hour ago)", std[0].Name)

	presets, err := r.Presets(format, opts)
	require.NoError(t, err)
	assert.Len(t, presets, 4)
	assert.Equal(t, "Preset: social", presets[0].Name)

	locales, err := r.Locales(format, []*locale.Config{locale.Default()}, opts)
	require.NoError(t, err)
	require.Len(t, locales, 1)
	assert.Equal(t, "Locale: English (United States)", locales[0].Name)

	all := r.Results()
	assert.Len(t, all, len(std)+len(presets)+len(locales))
	for _, res := range all {
		// the probe call is not timed
		assert.Equal(t, 10*time.Millisecond, res.Total, res.Name)
	}

	r.Reset()
	assert.Empty(t, r.Results())
}

func TestRunCases_Error(t *testing.T) {
	r := NewRunner(testingclock.NewFakeClock(Epoch))
	boom := errors.New("boom")
	_, err := r.RunCases(func(any, any, timeutil.Options) (string, error) { return "", boom },
		PresetCases(), Options{Iterations: 1})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "Preset: social")
	assert.Empty(t, r.Results())
}

func TestReport(t *testing.T) {
	fake := testingclock.NewFakeClock(Epoch)
	r := NewRunner(fake)
	assert.Equal(t, "No benchmark results available.\n", r.Report())

	r.Run("fast", func() { fake.Step(time.Millisecond) }, Options{Iterations: 2000, Warmup: ptr.To(0)})
	r.Run("slow", func() { fake.Step(4 * time.Millisecond) }, Options{Iterations: 1000, Warmup: ptr.To(0)})

	report := r.Report()
	assert.True(t, strings.HasPrefix(report, "Performance Benchmark Report\n"))
	assert.Contains(t, report, "1. fast\n")
	assert.Contains(t, report, "   Iterations: 2,000\n")
	assert.Contains(t, report, "   Total Time: 2s\n")
	assert.Contains(t, report, "   Average Time: 4.0000ms\n")
	assert.Contains(t, report, "   Operations/sec: 250\n")
	assert.Contains(t, report, "Average Operations/sec: 625\n")
	assert.Contains(t, report, "Min Operations/sec: 250\n")
	assert.Contains(t, report, "Max Operations/sec: 1,000\n")
}

func TestShortDuration(t *testing.T) {
	assert.Equal(t, "0s", shortDuration(0))
	assert.Equal(t, "1s250ms", shortDuration(1250*time.Millisecond))
	assert.Equal(t, "2m3s", shortDuration(2*time.Minute+3*time.Second+400*time.Millisecond))
}
