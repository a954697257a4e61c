package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeSharpsAlter(t *testing.T) {
	assert.Equal(t, 0, ModeNone.SharpsAlter())
	assert.Equal(t, 0, ModeMajor.SharpsAlter())
	assert.Equal(t, -3, ModeMinor.SharpsAlter())
	assert.Equal(t, -2, ModeDorian.SharpsAlter())
	assert.Equal(t, -4, ModePhrygian.SharpsAlter())
	assert.Equal(t, 1, ModeLydian.SharpsAlter())
	assert.Equal(t, -1, ModeMixolydian.SharpsAlter())
	assert.Equal(t, -5, ModeLocrian.SharpsAlter())
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"major", "minor", "dorian", "phrygian", "lydian", "mixolydian", "locrian"} {
		m, err := ParseMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, m.String(), name)
	}

	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeNone, m)

	_, err = ParseMode("ionian")
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}
