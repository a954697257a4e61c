package theory

import (
	"fmt"
	"math"
	"strings"
)

// Diatonic letters in circle-of-fifths order. The index of a letter here,
// minus one, is the sharps count of the major key on that (natural) letter:
// F is -1, C is 0, G is 1, and so on.
var fifthsOrder = [7]byte{'F', 'C', 'G', 'D', 'A', 'E', 'B'}

// Semitone offset of each natural letter above C.
var stepSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Accidental is the chromatic alteration applied to a diatonic letter,
// in semitones. Whole numbers are the twelve-tone accidentals; anything
// else is microtonal.
type Accidental struct {
	Alter float64 `json:"alter"`
}

// IsTwelveTone reports whether the accidental is a whole number of
// semitones.
func (a Accidental) IsTwelveTone() bool {
	return a.Alter == math.Trunc(a.Alter)
}

// Name returns the conventional accidental name ("sharp", "double-flat",
// ...) for twelve-tone accidentals, or a numeric description otherwise.
func (a Accidental) Name() string {
	switch a.Alter {
	case 0:
		return "natural"
	case 1:
		return "sharp"
	case -1:
		return "flat"
	case 2:
		return "double-sharp"
	case -2:
		return "double-flat"
	case 3:
		return "triple-sharp"
	case -3:
		return "triple-flat"
	}
	return fmt.Sprintf("alter(%+g)", a.Alter)
}

// Modifier returns the symbol appended to a letter name: runs of "#" for
// sharps and "-" for flats, empty for natural.
func (a Accidental) Modifier() string {
	if !a.IsTwelveTone() {
		return fmt.Sprintf("(%+g)", a.Alter)
	}
	n := int(a.Alter)
	if n > 0 {
		return strings.Repeat("#", n)
	}
	return strings.Repeat("-", -n)
}

// Pitch is a spelled, octave-independent pitch: a diatonic letter plus an
// accidental alteration. F# and G- are distinct Pitch values even though
// they share pitch class 6.
type Pitch struct {
	Step  byte    `json:"step"`  // diatonic letter 'A'..'G'
	Alter float64 `json:"alter"` // accidental alteration in semitones
}

// ParsePitch parses names like "C", "f#", "B-", "F--". The letter may be
// upper or lower case; sharps are "#" and flats are "-".
func ParsePitch(name string) (Pitch, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return Pitch{}, fmt.Errorf("%w: empty name", ErrInvalidPitch)
	}
	step := byte(strings.ToUpper(s[:1])[0])
	if step < 'A' || step > 'G' {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, name)
	}
	alter := 0.0
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '#':
			alter++
		case '-':
			alter--
		default:
			return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, name)
		}
	}
	return Pitch{Step: step, Alter: alter}, nil
}

// MustParsePitch is ParsePitch for known-good literals; it panics on error.
func MustParsePitch(name string) Pitch {
	p, err := ParsePitch(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Default spelling for each pitch class, following the common key-naming
// convention (sharp names for C#/F#, flat names for E-/A-/B-).
var classSpelling = [12]string{
	"C", "C#", "D", "E-", "E", "F", "F#", "G", "A-", "A", "B-", "B",
}

// PitchFromClass returns the default spelling for a pitch class 0..11
// (C=0 .. B=11).
func PitchFromClass(pc int) Pitch {
	return MustParsePitch(classSpelling[((pc%12)+12)%12])
}

// Class returns the twelve-tone pitch class 0..11. Microtonal alterations
// are rounded to the nearest semitone.
func (p Pitch) Class() int {
	pc := stepSemitones[p.Step] + int(math.Round(p.Alter))
	return ((pc % 12) + 12) % 12
}

// IsTwelveTone reports whether the pitch carries a twelve-tone accidental.
func (p Pitch) IsTwelveTone() bool {
	return p.Accidental().IsTwelveTone()
}

// Accidental returns the accidental applied to the letter.
func (p Pitch) Accidental() Accidental {
	return Accidental{Alter: p.Alter}
}

// Name returns the spelled name, e.g. "F#", "B-", "C##".
func (p Pitch) Name() string {
	return string(p.Step) + p.Accidental().Modifier()
}

func (p Pitch) String() string {
	return p.Name()
}

// fifthsPosition places the pitch on the line of fifths: F=-1, C=0, G=1,
// with each sharp adding 7 and each flat subtracting 7. Undefined for
// microtonal pitches.
func (p Pitch) fifthsPosition() (int, error) {
	if !p.IsTwelveTone() {
		return 0, fmt.Errorf("%w: %s", ErrMicrotonalPitch, p.Name())
	}
	idx := -1
	for i, step := range fifthsOrder {
		if step == p.Step {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: step %q", ErrInvalidPitch, string(p.Step))
	}
	return idx - 1 + 7*int(p.Alter), nil
}

// pitchFromFifths is the inverse of fifthsPosition. Positions beyond a full
// cycle of seven accumulate accidentals naturally: position 6 is F#,
// position 13 is F##.
func pitchFromFifths(pos int) Pitch {
	idx := pos + 1
	letter := fifthsOrder[((idx%7)+7)%7]
	alter := idx / 7
	if idx < 0 && idx%7 != 0 {
		alter--
	}
	return Pitch{Step: letter, Alter: float64(alter)}
}

// Transpose returns the pitch shifted by the interval, keeping exact
// spelling (a perfect fifth above B is F#, not G-). Microtonal pitches
// cannot be transposed this way.
func (p Pitch) Transpose(iv Interval) (Pitch, error) {
	pos, err := p.fifthsPosition()
	if err != nil {
		return Pitch{}, err
	}
	return pitchFromFifths(pos + iv.Fifths), nil
}

// NormalizeKeyName rewrites names using "b" as a flat ("Eb", "bb") to the
// "-" spelling used here, leaving already-valid names alone.
func NormalizeKeyName(name string) string {
	switch name {
	case "bb":
		return "b-"
	case "Bb":
		return "B-"
	}
	if strings.HasSuffix(name, "b") && !strings.HasPrefix(name, "b") {
		return strings.TrimRight(name, "b") + strings.Repeat("-", len(name)-len(strings.TrimRight(name, "b")))
	}
	return name
}
