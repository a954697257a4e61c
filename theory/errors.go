package theory

import "errors"

var (
	// ErrInvalidPitch indicates a pitch name that could not be parsed.
	ErrInvalidPitch = errors.New("theory: invalid pitch name")

	// ErrInvalidInterval indicates an interval specification that could not
	// be parsed (bad quality, bad size, or a quality/size mismatch such as
	// a "perfect third").
	ErrInvalidInterval = errors.New("theory: invalid interval")

	// ErrInvalidSharps indicates a sharps count outside the supported range.
	// Callers holding a tonic name rather than a circle-of-fifths position
	// usually want a Key instead of a KeySignature.
	ErrInvalidSharps = errors.New("theory: invalid sharps count")

	// ErrUnsupportedMode indicates a mode with no scale mapping.
	ErrUnsupportedMode = errors.New("theory: unsupported mode")

	// ErrMicrotonalPitch indicates a sharps-count conversion attempted on a
	// pitch whose accidental is not a whole number of semitones.
	ErrMicrotonalPitch = errors.New("theory: sharps count undefined for microtonal pitch")

	// ErrNoAlternates indicates a tonal-certainty request on a Key whose
	// alternate interpretations were never populated by a detector.
	ErrNoAlternates = errors.New("theory: no alternate interpretations recorded")

	// ErrEmptyChord indicates a root request on a chord with no pitches.
	ErrEmptyChord = errors.New("theory: chord has no pitches")
)
