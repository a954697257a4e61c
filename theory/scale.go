package theory

import "fmt"

var letterOrder = [7]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

// Scale is a diatonic scale: seven correctly spelled pitches built from a
// tonic and a mode. Spelling comes from the mode's key signature, so the
// scale of e- minor contains C- rather than B.
type Scale struct {
	tonic   Pitch
	mode    Mode
	pitches []Pitch
}

// NewMajorScale builds the major scale on the given tonic.
func NewMajorScale(tonic Pitch) (*Scale, error) {
	return newDiatonicScale(tonic, ModeMajor)
}

// NewNaturalMinorScale builds the natural minor scale on the given tonic.
func NewNaturalMinorScale(tonic Pitch) (*Scale, error) {
	return newDiatonicScale(tonic, ModeMinor)
}

func newDiatonicScale(tonic Pitch, mode Mode) (*Scale, error) {
	sharps, err := PitchToSharps(tonic, mode)
	if err != nil {
		return nil, err
	}
	sig, err := NewKeySignature(sharps)
	if err != nil {
		return nil, err
	}

	start := 0
	for i, letter := range letterOrder {
		if letter == tonic.Step {
			start = i
			break
		}
	}

	pitches := make([]Pitch, 7)
	for i := range 7 {
		letter := letterOrder[(start+i)%7]
		p := Pitch{Step: letter}
		if acc := sig.AccidentalByStep(string(letter)); acc != nil {
			p.Alter = acc.Alter
		}
		pitches[i] = p
	}
	return &Scale{tonic: tonic, mode: mode, pitches: pitches}, nil
}

// Tonic returns the scale's tonic pitch.
func (s *Scale) Tonic() Pitch {
	return s.tonic
}

// Mode returns the scale's mode.
func (s *Scale) Mode() Mode {
	return s.mode
}

// Pitches returns the seven scale pitches in ascending letter order from
// the tonic.
func (s *Scale) Pitches() []Pitch {
	out := make([]Pitch, len(s.pitches))
	copy(out, s.pitches)
	return out
}

// PitchFromDegree returns the scale degree 1..7 (1 is the tonic).
func (s *Scale) PitchFromDegree(degree int) (Pitch, error) {
	if degree < 1 || degree > 7 {
		return Pitch{}, fmt.Errorf("theory: scale degree %d out of range 1..7", degree)
	}
	return s.pitches[degree-1], nil
}

func (s *Scale) String() string {
	return fmt.Sprintf("%s %s scale", s.tonic.Name(), s.mode)
}
