package theory

import (
	"fmt"
	"strings"
)

// AlternateInterpretation is one non-winning key candidate from a
// detection run: a tonic, a mode, and the correlation score that candidate
// achieved.
type AlternateInterpretation struct {
	Tonic Pitch   `json:"tonic"`
	Mode  Mode    `json:"mode"`
	Score float64 `json:"score"`
}

// Key is a concrete tonal center: a tonic pitch and mode together with the
// key signature they imply and the diatonic scale built on them. A Key
// produced by a detector additionally carries its correlation score and a
// ranked list of the runner-up interpretations (the winner itself is not
// repeated in that list).
type Key struct {
	KeySignature

	tonic Pitch
	scale *Scale

	// CorrelationScore is the winning candidate's score when this Key was
	// produced by a detector, zero otherwise.
	CorrelationScore float64

	// AlternateInterpretations ranks the remaining candidates by
	// descending score. Empty unless populated by a detector.
	AlternateInterpretations []AlternateInterpretation
}

// NewKey builds a key from a tonic name. When mode is ModeNone it is
// inferred from the name: a trailing "m" or "M" marks minor or major, and
// otherwise a lowercase letter means minor, uppercase major ("c#" is
// c-sharp minor, "C#" C-sharp major). An explicit mode always wins. Names
// using "b" for flat ("Eb", "bb") are normalized first.
func NewKey(tonic string, mode Mode) (*Key, error) {
	name := NormalizeKeyName(strings.TrimSpace(tonic))
	if name == "" {
		return nil, fmt.Errorf("%w: empty tonic", ErrInvalidPitch)
	}

	if mode == ModeNone {
		switch {
		case strings.HasSuffix(name, "m") && len(name) > 1:
			mode = ModeMinor
			name = strings.TrimSuffix(name, "m")
		case strings.HasSuffix(name, "M") && len(name) > 1:
			mode = ModeMajor
			name = strings.TrimSuffix(name, "M")
		case name[:1] == strings.ToLower(name[:1]):
			mode = ModeMinor
		default:
			mode = ModeMajor
		}
	}

	p, err := ParsePitch(name)
	if err != nil {
		return nil, err
	}
	return NewKeyFromPitch(p, mode)
}

// NewKeyFromPitch builds a key from a tonic pitch and mode. ModeNone
// defaults to major.
func NewKeyFromPitch(tonic Pitch, mode Mode) (*Key, error) {
	if mode == ModeNone {
		mode = ModeMajor
	}
	sharps, err := PitchToSharps(tonic, mode)
	if err != nil {
		return nil, err
	}
	sig, err := NewKeySignature(sharps)
	if err != nil {
		return nil, err
	}
	sig.SetMode(mode)

	k := &Key{KeySignature: *sig, tonic: tonic}
	switch mode {
	case ModeMajor:
		k.scale, err = NewMajorScale(tonic)
	case ModeMinor:
		k.scale, err = NewNaturalMinorScale(tonic)
	default:
		// church modes carry a signature but no scale mapping yet
	}
	if err != nil {
		return nil, err
	}
	return k, nil
}

// NewKeyFromChord builds a key on the chord's root. When mode is ModeNone
// a minor triad implies minor and anything else major.
func NewKeyFromChord(c *Chord, mode Mode) (*Key, error) {
	root, err := c.Root()
	if err != nil {
		return nil, err
	}
	if mode == ModeNone {
		if c.IsMinorTriad() {
			mode = ModeMinor
		} else {
			mode = ModeMajor
		}
	}
	return NewKeyFromPitch(root, mode)
}

// Tonic returns the key's tonic pitch.
func (k *Key) Tonic() Pitch {
	return k.tonic
}

// Scale returns the key's diatonic scale. Keys in modes without a scale
// mapping return ErrUnsupportedMode.
func (k *Key) Scale() (*Scale, error) {
	if k.scale == nil {
		return nil, fmt.Errorf("%w: no scale mapping for %s", ErrUnsupportedMode, k.Mode())
	}
	return k.scale, nil
}

// TonalCertainty measures how confidently this key beat its alternates:
// the winner's score plus twice its lead over the runner-up. The weighting
// is the legacy empirical formula, kept for reproducibility rather than as
// a calibrated statistic. Returns ErrNoAlternates when no detector has
// populated AlternateInterpretations.
func (k *Key) TonalCertainty() (float64, error) {
	if len(k.AlternateInterpretations) == 0 {
		return 0, fmt.Errorf("%w: cannot measure certainty", ErrNoAlternates)
	}

	top := k.CorrelationScore
	second := 0.0
	for _, alt := range k.AlternateInterpretations {
		if alt.Score > 0 {
			second = alt.Score
			break
		}
	}
	return top + 2*(top-second), nil
}

// String renders the key in conventional case: uppercase tonic for major,
// lowercase for minor.
func (k *Key) String() string {
	name := k.tonic.Name()
	switch k.Mode() {
	case ModeMajor:
		name = strings.ToUpper(name[:1]) + name[1:]
	case ModeMinor:
		name = strings.ToLower(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%s %s", name, k.Mode())
}
