package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, u := range All() {
		t.Run(u.String(), func(t *testing.T) {
			got, err := Parse(u.String())
			require.NoError(t, err)
			assert.Equal(t, u, got)
		})
	}

	t.Run("case insensitive", func(t *testing.T) {
		got, err := Parse(" Quarter ")
		require.NoError(t, err)
		assert.Equal(t, Quarter, got)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Parse("fortnight")
		assert.ErrorContains(t, err, "unknown time unit")
	})
}

func TestTablesDisagreeForLongUnits(t *testing.T) {
	tests := []struct {
		unit      Unit
		constant  float64
		threshold float64
	}{
		{Millisecond, 0.001, 0.001},
		{Second, 1, 1},
		{Minute, 60, 60},
		{Hour, 3600, 3600},
		{Day, 86400, 86400},
		{Week, 604800, 604800},
		{Month, 2592000, 2629746},
		{Quarter, 7776000, 7889238},
		{Year, 31536000, 31556952},
		{Decade, 315360000, 315569520},
	}
	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			assert.Equal(t, tt.constant, tt.unit.Seconds())
			assert.Equal(t, tt.threshold, tt.unit.Threshold())
		})
	}
}

func TestCascadeOrder(t *testing.T) {
	c := Cascade()
	require.Len(t, c, 10)
	assert.Equal(t, Decade, c[0])
	assert.Equal(t, Millisecond, c[len(c)-1])
	for i := 1; i < len(c); i++ {
		assert.Greater(t, c[i-1], c[i])
	}
}

func TestInvalidUnit(t *testing.T) {
	u := Unit(42)
	assert.False(t, u.Valid())
	assert.Equal(t, "Unit(42)", u.String())
	assert.Zero(t, u.Threshold())
	_, err := u.MarshalText()
	assert.Error(t, err)
}

func TestTextRoundTrip(t *testing.T) {
	var u Unit
	require.NoError(t, u.UnmarshalText([]byte("week")))
	assert.Equal(t, Week, u)
	b, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "week", string(b))
}
