package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorManager_FixedBuckets(t *testing.T) {
	cm := NewColorManager()
	assert.Equal(t, BucketColors["today"], cm.ColorFor("today"))
	assert.Equal(t, BucketColors["cascade"], cm.ColorFor("cascade"))
	assert.Equal(t, cm.ColorFor("yesterday"), cm.ColorFor("tomorrow"))
}

func TestColorManager_UnknownKeysCyclePalette(t *testing.T) {
	cm := NewColorManager()
	for i := range BrightPalette {
		assert.Equal(t, BrightPalette[i], cm.ColorFor(string(rune('a'+i))))
	}
	assert.Equal(t, BrightPalette[0], cm.ColorFor("overflow"))
	assert.Equal(t, BrightPalette[1], cm.ColorFor("b"), "assignment is sticky")
}

func TestColorManager_Wrap(t *testing.T) {
	cm := NewColorManager()
	assert.Equal(t, BucketColors["just-now"]+"# Just now"+Reset, cm.Wrap("# Just now", "just-now"))
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseColorMode("sometimes")
	assert.ErrorContains(t, err, "invalid color mode")
}

func TestResolveColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.True(t, ResolveColor(ColorAlways, false))
	assert.False(t, ResolveColor(ColorNever, true))
	assert.True(t, ResolveColor(ColorAuto, true))
	assert.False(t, ResolveColor(ColorAuto, false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ResolveColor(ColorAuto, true))
	assert.True(t, ResolveColor(ColorAlways, true), "always overrides NO_COLOR")
}
