package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharpsToPitch(t *testing.T) {
	cases := map[int]string{
		0:  "C",
		1:  "G",
		2:  "D",
		3:  "A",
		6:  "F#",
		7:  "C#",
		8:  "G#",
		-1: "F",
		-2: "B-",
		-3: "E-",
		-6: "G-",
		-7: "C-",
		-8: "F-",
		9:  "D#",
	}
	for sharps, want := range cases {
		assert.Equal(t, want, SharpsToPitch(sharps).Name(), "sharps=%d", sharps)
	}
}

func TestPitchToSharps(t *testing.T) {
	cases := []struct {
		pitch string
		mode  Mode
		want  int
	}{
		{"c", ModeNone, 0},
		{"c", ModeMinor, -3},
		{"a", ModeMinor, 0},
		{"d", ModeNone, 2},
		{"e-", ModeNone, -3},
		{"a", ModeNone, 3},
		{"e", ModeMinor, 1},
		{"f#", ModeMajor, 6},
		{"g-", ModeMajor, -6},
		{"c#", ModeNone, 7},
		{"g#", ModeNone, 8},
		{"e", ModeDorian, 2},
		{"d", ModeDorian, 0},
		{"g", ModeMixolydian, 0},
		{"e-", ModeLydian, -2},
		{"a", ModePhrygian, -1},
		{"e", ModePhrygian, 0},
		{"f-", ModeNone, -8},
		{"f--", ModeNone, -15},
		{"f--", ModeLocrian, -20},
	}
	for _, tc := range cases {
		got, err := PitchToSharps(MustParsePitch(tc.pitch), tc.mode)
		require.NoError(t, err, "%s %s", tc.pitch, tc.mode)
		assert.Equal(t, tc.want, got, "%s %s", tc.pitch, tc.mode)
	}
}

func TestPitchToSharpsMicrotonal(t *testing.T) {
	_, err := PitchToSharps(Pitch{Step: 'C', Alter: 0.5}, ModeNone)
	assert.ErrorIs(t, err, ErrMicrotonalPitch)
}

// Round trip: converting a major tonic to sharps and back must reproduce
// the exact spelling. Minor and the church modes round-trip through the
// mode offset.
func TestSharpsPitchRoundTrip(t *testing.T) {
	for sharps := -15; sharps <= 15; sharps++ {
		p := SharpsToPitch(sharps)
		got, err := PitchToSharps(p, ModeMajor)
		require.NoError(t, err)
		assert.Equal(t, sharps, got, "major tonic %s", p)
	}

	modes := []Mode{ModeMajor, ModeMinor, ModeDorian, ModePhrygian, ModeLydian, ModeMixolydian, ModeLocrian}
	letters := []string{"C", "D", "E", "F", "G", "A", "B"}
	accidentals := []string{"", "#", "-", "##", "--"}
	for _, mode := range modes {
		for _, letter := range letters {
			for _, acc := range accidentals {
				p := MustParsePitch(letter + acc)
				sharps, err := PitchToSharps(p, mode)
				require.NoError(t, err)
				// strip the mode offset to recover the major tonic
				back := SharpsToPitch(sharps - mode.SharpsAlter())
				assert.Equal(t, p.Name(), back.Name(), "%s %s", p, mode)
			}
		}
	}
}

func TestConverterCacheIsolation(t *testing.T) {
	c1, err := NewConverter(8)
	require.NoError(t, err)
	c2, err := NewConverter(8)
	require.NoError(t, err)

	// identical results from independent caches
	for sharps := -10; sharps <= 10; sharps++ {
		assert.Equal(t, c1.SharpsToPitch(sharps), c2.SharpsToPitch(sharps))
	}

	// repeated lookups hit the cache and stay stable
	assert.Equal(t, "G", c1.SharpsToPitch(1).Name())
	assert.Equal(t, "G", c1.SharpsToPitch(1).Name())
}

func TestNewConverterInvalidSize(t *testing.T) {
	_, err := NewConverter(0)
	assert.Error(t, err)
}
