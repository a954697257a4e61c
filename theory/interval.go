package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a directed, spelled interval represented by its displacement
// on the line of fifths. That single number determines exact spelled
// transposition: a perfect fifth is +1, a perfect fourth is -1, a minor
// second is -5, an augmented third is +11.
type Interval struct {
	Fifths int    `json:"fifths"`
	Spec   string `json:"spec,omitempty"` // original specification, if parsed
}

// Base fifths displacement of the perfect/major interval for each generic
// degree 1..7 (unison, second, ... seventh).
var degreeFifths = [8]int{0, 0, 2, 4, -1, 1, 3, 5}

var perfectDegrees = map[int]bool{1: true, 4: true, 5: true}

// ParseInterval parses specifications like "P5", "p4", "M2", "-m2", "a3",
// "-a3", "d5". The quality letter is one of P/p (perfect), M (major),
// m (minor), A/a (augmented), D/d (diminished); a leading "-" descends.
// Compound sizes (9ths and up) reduce to their simple equivalents.
func ParseInterval(spec string) (Interval, error) {
	s := strings.TrimSpace(spec)
	descending := false
	if strings.HasPrefix(s, "-") {
		descending = true
		s = s[1:]
	}
	if len(s) < 2 {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, spec)
	}
	quality := s[0]
	size, err := strconv.Atoi(s[1:])
	if err != nil || size < 1 {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, spec)
	}
	degree := (size-1)%7 + 1
	fifths := degreeFifths[degree]
	perfect := perfectDegrees[degree]

	switch quality {
	case 'P', 'p':
		if !perfect {
			return Interval{}, fmt.Errorf("%w: %q has no perfect quality", ErrInvalidInterval, spec)
		}
	case 'M':
		if perfect {
			return Interval{}, fmt.Errorf("%w: %q has no major quality", ErrInvalidInterval, spec)
		}
	case 'm':
		if perfect {
			return Interval{}, fmt.Errorf("%w: %q has no minor quality", ErrInvalidInterval, spec)
		}
		fifths -= 7
	case 'A', 'a':
		fifths += 7
	case 'D', 'd':
		fifths -= 7
		if !perfect {
			// diminished is one step below minor
			fifths -= 7
		}
	default:
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, spec)
	}

	if descending {
		fifths = -fifths
	}
	return Interval{Fifths: fifths, Spec: spec}, nil
}

// MustParseInterval is ParseInterval for known-good literals; it panics on
// error.
func MustParseInterval(spec string) Interval {
	iv, err := ParseInterval(spec)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv Interval) String() string {
	if iv.Spec != "" {
		return iv.Spec
	}
	return fmt.Sprintf("interval(%+d fifths)", iv.Fifths)
}
