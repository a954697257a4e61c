package theory

import (
	"fmt"
	"strings"
)

// maxSharps bounds the supported circle-of-fifths range. Three full cycles
// covers every tonic up to triple accidentals (f-- locrian is -20).
const maxSharps = 21

// KeySignature is a notated key signature: a position on the circle of
// fifths plus an optional mode. The derived altered-pitch list is computed
// lazily and cached; any mutation of sharps or mode invalidates the cache.
type KeySignature struct {
	sharps int
	mode   Mode

	alteredPitches []Pitch // lazy cache, nil when invalid
}

// NewKeySignature creates a key signature from a signed sharps count
// (negative for flats). Counts outside the supported range return
// ErrInvalidSharps; if you have a tonic name rather than a count, build a
// Key instead.
func NewKeySignature(sharps int) (*KeySignature, error) {
	if sharps < -maxSharps || sharps > maxSharps {
		return nil, fmt.Errorf("%w: %d (did you mean to build a Key from a tonic name?)", ErrInvalidSharps, sharps)
	}
	return &KeySignature{sharps: sharps}, nil
}

// MustKeySignature is NewKeySignature for known-good counts; it panics on
// error.
func MustKeySignature(sharps int) *KeySignature {
	ks, err := NewKeySignature(sharps)
	if err != nil {
		panic(err)
	}
	return ks
}

// Sharps returns the signed sharps count.
func (ks *KeySignature) Sharps() int {
	return ks.sharps
}

// SetSharps changes the sharps count and invalidates derived state.
func (ks *KeySignature) SetSharps(sharps int) {
	if sharps == ks.sharps {
		return
	}
	ks.sharps = sharps
	ks.invalidate()
}

// Mode returns the signature's mode, ModeNone when unspecified.
func (ks *KeySignature) Mode() Mode {
	return ks.mode
}

// SetMode changes the mode and invalidates derived state.
func (ks *KeySignature) SetMode(mode Mode) {
	if mode == ks.mode {
		return
	}
	ks.mode = mode
	ks.invalidate()
}

func (ks *KeySignature) invalidate() {
	ks.alteredPitches = nil
}

// AlteredPitches returns the pitches that receive an accidental under this
// signature, in notation order. Sharps walk up perfect fifths from B
// (F# C# G# D# A# E# B#); flats walk up perfect fourths from F
// (B- E- A- D- G- C- F-). Past seven, letters repeat with double
// accidentals.
func (ks *KeySignature) AlteredPitches() []Pitch {
	if ks.alteredPitches != nil {
		return ks.alteredPitches
	}

	post := []Pitch{}
	switch {
	case ks.sharps > 0:
		pos := 5 // B
		for range ks.sharps {
			pos++ // up a perfect fifth
			post = append(post, pitchFromFifths(pos))
		}
	case ks.sharps < 0:
		pos := -1 // F
		for range -ks.sharps {
			pos-- // up a perfect fourth
			post = append(post, pitchFromFifths(pos))
		}
	}

	ks.alteredPitches = post
	return post
}

// AccidentalByStep returns the accidental this signature applies to the
// given letter (case-insensitive), or nil when the letter is unaltered.
// The altered-pitch list is scanned in reverse so that a malformed list
// with duplicate letters resolves to its last entry.
func (ks *KeySignature) AccidentalByStep(step string) *Accidental {
	if step == "" {
		return nil
	}
	upper := strings.ToUpper(step)[0]
	altered := ks.AlteredPitches()
	for i := len(altered) - 1; i >= 0; i-- {
		if altered[i].Step == upper {
			acc := altered[i].Accidental()
			return &acc
		}
	}
	return nil
}

// TonicPitch returns the tonic this signature names: the major-key tonic,
// or the relative minor tonic when the mode is minor.
func (ks *KeySignature) TonicPitch() Pitch {
	if ks.mode == ModeMinor {
		return SharpsToPitch(ks.sharps + 3)
	}
	return SharpsToPitch(ks.sharps)
}

// Transpose returns a new key signature whose tonic has been shifted by
// the interval, preserving the mode. The receiver is unchanged.
func (ks *KeySignature) Transpose(iv Interval) (*KeySignature, error) {
	post := &KeySignature{sharps: ks.sharps, mode: ks.mode}
	if err := post.TransposeInPlace(iv); err != nil {
		return nil, err
	}
	return post, nil
}

// TransposeInPlace shifts this signature's tonic by the interval,
// recomputing the sharps count by round-tripping the tonic through the
// pitch-to-sharps conversion. The altered-pitch cache is invalidated.
func (ks *KeySignature) TransposeInPlace(iv Interval) error {
	tonic := ks.TonicPitch()
	shifted, err := tonic.Transpose(iv)
	if err != nil {
		return err
	}
	sharps, err := PitchToSharps(shifted, ks.mode)
	if err != nil {
		return err
	}
	ks.sharps = sharps
	ks.invalidate()
	return nil
}

// Scale returns the diatonic scale this signature represents: major for
// major or unspecified mode, natural minor for minor. Other modes return
// ErrUnsupportedMode.
func (ks *KeySignature) Scale() (*Scale, error) {
	switch ks.mode {
	case ModeNone, ModeMajor:
		return NewMajorScale(ks.TonicPitch())
	case ModeMinor:
		return NewNaturalMinorScale(ks.TonicPitch())
	default:
		return nil, fmt.Errorf("%w: no scale mapping for %s", ErrUnsupportedMode, ks.mode)
	}
}

func (ks *KeySignature) String() string {
	var out string
	switch {
	case ks.sharps > 1:
		out = fmt.Sprintf("%d sharps", ks.sharps)
	case ks.sharps == 1:
		out = "1 sharp"
	case ks.sharps == 0:
		out = "no sharps or flats"
	case ks.sharps == -1:
		out = "1 flat"
	default:
		out = fmt.Sprintf("%d flats", -ks.sharps)
	}
	if ks.mode != ModeNone {
		out += fmt.Sprintf(", mode %s", ks.mode)
	}
	return out
}
