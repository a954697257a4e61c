package theory

import "fmt"

// Mode identifies a diatonic mode. The zero value means "unspecified",
// which conversion treats as major.
type Mode int

const (
	ModeNone Mode = iota
	ModeMajor
	ModeMinor
	ModeDorian
	ModePhrygian
	ModeLydian
	ModeMixolydian
	ModeLocrian
)

// Sharps-count offset of each mode relative to the major key on the same
// tonic. A minor key carries three fewer sharps than the major key on its
// tonic.
var modeSharpsAlter = map[Mode]int{
	ModeMajor:      0,
	ModeMinor:      -3,
	ModeDorian:     -2,
	ModePhrygian:   -4,
	ModeLydian:     1,
	ModeMixolydian: -1,
	ModeLocrian:    -5,
}

var modeNames = map[Mode]string{
	ModeNone:       "",
	ModeMajor:      "major",
	ModeMinor:      "minor",
	ModeDorian:     "dorian",
	ModePhrygian:   "phrygian",
	ModeLydian:     "lydian",
	ModeMixolydian: "mixolydian",
	ModeLocrian:    "locrian",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// SharpsAlter returns the mode's sharps offset relative to major.
// ModeNone counts as major.
func (m Mode) SharpsAlter() int {
	return modeSharpsAlter[m]
}

// ParseMode parses a mode name such as "major" or "dorian". The empty
// string parses to ModeNone.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
}
