package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pitchNames(pitches []Pitch) []string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.Name()
	}
	return names
}

func TestNewKeySignatureOutOfRange(t *testing.T) {
	_, err := NewKeySignature(22)
	assert.ErrorIs(t, err, ErrInvalidSharps)
	_, err = NewKeySignature(-22)
	assert.ErrorIs(t, err, ErrInvalidSharps)

	ks, err := NewKeySignature(-20)
	require.NoError(t, err)
	assert.Equal(t, -20, ks.Sharps())
}

func TestAlteredPitches(t *testing.T) {
	cases := []struct {
		sharps int
		want   []string
	}{
		{0, []string{}},
		{1, []string{"F#"}},
		{3, []string{"F#", "C#", "G#"}},
		{7, []string{"F#", "C#", "G#", "D#", "A#", "E#", "B#"}},
		{9, []string{"F#", "C#", "G#", "D#", "A#", "E#", "B#", "F##", "C##"}},
		{-1, []string{"B-"}},
		{-3, []string{"B-", "E-", "A-"}},
		{-6, []string{"B-", "E-", "A-", "D-", "G-", "C-"}},
		{-8, []string{"B-", "E-", "A-", "D-", "G-", "C-", "F-", "B--"}},
	}
	for _, tc := range cases {
		ks := MustKeySignature(tc.sharps)
		assert.Equal(t, tc.want, pitchNames(ks.AlteredPitches()), "sharps=%d", tc.sharps)
	}
}

// The letter sequence for k sharps is the first k letters of the cyclic
// fifths order starting at F, each occurrence one accidental step above
// the previous one for that letter.
func TestAlteredPitchesLetterCycle(t *testing.T) {
	cycle := []byte{'F', 'C', 'G', 'D', 'A', 'E', 'B'}
	ks := MustKeySignature(16)
	altered := ks.AlteredPitches()
	require.Len(t, altered, 16)
	for i, p := range altered {
		assert.Equal(t, cycle[i%7], p.Step, "entry %d", i)
		assert.Equal(t, float64(i/7+1), p.Alter, "entry %d", i)
	}
}

func TestAccidentalByStep(t *testing.T) {
	g := MustKeySignature(1)
	require.NotNil(t, g.AccidentalByStep("F"))
	assert.Equal(t, "sharp", g.AccidentalByStep("F").Name())
	assert.Nil(t, g.AccidentalByStep("G"))

	f := MustKeySignature(-1)
	require.NotNil(t, f.AccidentalByStep("b"))
	assert.Equal(t, "flat", f.AccidentalByStep("b").Name())

	// double accidentals past seven steps
	fflat := MustKeySignature(-8)
	require.NotNil(t, fflat.AccidentalByStep("B"))
	assert.Equal(t, "double-flat", fflat.AccidentalByStep("B").Name())
}

// AccidentalByStep must agree with a direct scan of the altered pitches.
func TestAccidentalByStepMatchesAlteredPitches(t *testing.T) {
	for sharps := -14; sharps <= 14; sharps++ {
		ks := MustKeySignature(sharps)
		byStep := map[byte]float64{}
		for _, p := range ks.AlteredPitches() {
			byStep[p.Step] = p.Alter // later entries win, as in the reverse scan
		}
		for _, letter := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			acc := ks.AccidentalByStep(letter)
			want, ok := byStep[letter[0]]
			if !ok {
				assert.Nil(t, acc, "sharps=%d step=%s", sharps, letter)
				continue
			}
			require.NotNil(t, acc, "sharps=%d step=%s", sharps, letter)
			assert.Equal(t, want, acc.Alter, "sharps=%d step=%s", sharps, letter)
		}
	}
}

func TestCacheInvalidationOnMutation(t *testing.T) {
	ks := MustKeySignature(3)
	assert.Len(t, ks.AlteredPitches(), 3)

	ks.SetSharps(-2)
	assert.Equal(t, []string{"B-", "E-"}, pitchNames(ks.AlteredPitches()))

	ks.SetMode(ModeMinor)
	assert.Equal(t, []string{"B-", "E-"}, pitchNames(ks.AlteredPitches()))
}

func TestTonicPitch(t *testing.T) {
	assert.Equal(t, "C-", MustKeySignature(-7).TonicPitch().Name())
	assert.Equal(t, "G-", MustKeySignature(-6).TonicPitch().Name())
	assert.Equal(t, "E-", MustKeySignature(-3).TonicPitch().Name())
	assert.Equal(t, "C", MustKeySignature(0).TonicPitch().Name())
	assert.Equal(t, "G", MustKeySignature(1).TonicPitch().Name())

	csharpMinor := MustKeySignature(4)
	csharpMinor.SetMode(ModeMinor)
	assert.Equal(t, "C#", csharpMinor.TonicPitch().Name())
}

func TestTranspose(t *testing.T) {
	a := MustKeySignature(2) // D major
	assert.Equal(t, "D", a.TonicPitch().Name())

	b, err := a.Transpose(MustParseInterval("P5"))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Sharps())
	assert.Equal(t, "A", b.TonicPitch().Name())
	assert.Equal(t, 2, a.Sharps(), "pure transpose must not mutate")

	c, err := b.Transpose(MustParseInterval("-m2"))
	require.NoError(t, err)
	assert.Equal(t, 8, c.Sharps())
	assert.Equal(t, "G#", c.TonicPitch().Name())

	d, err := c.Transpose(MustParseInterval("-a3"))
	require.NoError(t, err)
	assert.Equal(t, -3, d.Sharps())
	assert.Equal(t, "E-", d.TonicPitch().Name())
}

func TestTransposeInPlacePreservesMode(t *testing.T) {
	ks := MustKeySignature(0)
	ks.SetMode(ModeMinor) // a minor
	require.NoError(t, ks.TransposeInPlace(MustParseInterval("M2")))
	assert.Equal(t, 2, ks.Sharps()) // b minor
	assert.Equal(t, ModeMinor, ks.Mode())
	assert.Equal(t, "B", ks.TonicPitch().Name())
}

func TestScale(t *testing.T) {
	ks := MustKeySignature(3)
	sc, err := ks.Scale()
	require.NoError(t, err)
	assert.Equal(t, "A", sc.Tonic().Name())
	assert.Equal(t, ModeMajor, sc.Mode())

	ks.SetMode(ModeMinor)
	sc, err = ks.Scale()
	require.NoError(t, err)
	assert.Equal(t, "F#", sc.Tonic().Name())
	assert.Equal(t, ModeMinor, sc.Mode())

	ks.SetMode(ModeDorian)
	_, err = ks.Scale()
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestKeySignatureString(t *testing.T) {
	assert.Equal(t, "no sharps or flats", MustKeySignature(0).String())
	assert.Equal(t, "1 sharp", MustKeySignature(1).String())
	assert.Equal(t, "3 sharps", MustKeySignature(3).String())
	assert.Equal(t, "1 flat", MustKeySignature(-1).String())
	assert.Equal(t, "4 flats", MustKeySignature(-4).String())

	ks := MustKeySignature(-3)
	ks.SetMode(ModePhrygian)
	assert.Equal(t, "3 flats, mode phrygian", ks.String())
}
