package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	cases := map[string]int{
		"P1":  0,
		"P5":  1,
		"p5":  1,
		"P4":  -1,
		"M2":  2,
		"m2":  -5,
		"M3":  4,
		"m3":  -3,
		"M6":  3,
		"m7":  -2,
		"a3":  11,
		"A4":  6,
		"d5":  -6,
		"d7":  -9,
		"-P5": -1,
		"-m2": 5,
		"-a3": -11,
		"M9":  2, // compound reduces to M2
		"P12": 1,
	}
	for spec, want := range cases {
		iv, err := ParseInterval(spec)
		require.NoError(t, err, spec)
		assert.Equal(t, want, iv.Fifths, spec)
		assert.Equal(t, spec, iv.String(), spec)
	}
}

func TestParseIntervalInvalid(t *testing.T) {
	for _, spec := range []string{"", "-", "P", "5", "P2", "M5", "m4", "x3", "P0", "Px"} {
		_, err := ParseInterval(spec)
		assert.ErrorIs(t, err, ErrInvalidInterval, spec)
	}
}
