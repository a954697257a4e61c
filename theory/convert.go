package theory

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Converter maps signed sharps counts to major-key tonic pitches and back.
// Results for SharpsToPitch are memoized in a bounded cache owned by the
// Converter, so independent converters (one per test, for example) never
// share state. The cache is safe for concurrent use.
type Converter struct {
	cache *lru.Cache[int, Pitch]
}

const defaultCacheSize = 64

// NewConverter creates a converter with its own memoization cache.
func NewConverter(cacheSize int) (*Converter, error) {
	cache, err := lru.New[int, Pitch](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("theory: converter cache: %w", err)
	}
	return &Converter{cache: cache}, nil
}

func mustNewConverter(cacheSize int) *Converter {
	c, err := NewConverter(cacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultConverter = mustNewConverter(defaultCacheSize)

// SharpsToPitch returns the tonic of the major key with the given signed
// sharps count: 0 is C, positive counts step up by perfect fifths (1 is G),
// negative counts step down (-1 is F). Beyond seven steps in either
// direction the tonic picks up double accidentals.
func (c *Converter) SharpsToPitch(sharps int) Pitch {
	if p, ok := c.cache.Get(sharps); ok {
		return p
	}

	step := 1 // up a perfect fifth
	if sharps < 0 {
		step = -1 // down a perfect fifth
	}
	pos := 0 // C
	for range abs(sharps) {
		pos += step
	}
	p := pitchFromFifths(pos)

	c.cache.Add(sharps, p)
	return p
}

// PitchToSharps returns the sharps count of the key with the given tonic
// and mode. The base count comes from the letter's position in fifths
// order ([F C G D A E B], C giving 0); each accidental semitone shifts the
// count by a further 7; the mode then applies its fixed offset. Pitches
// with microtonal accidentals have no sharps count.
func (c *Converter) PitchToSharps(p Pitch, mode Mode) (int, error) {
	pos, err := p.fifthsPosition()
	if err != nil {
		return 0, err
	}
	return pos + mode.SharpsAlter(), nil
}

// SharpsToPitch is Converter.SharpsToPitch on a shared default converter.
func SharpsToPitch(sharps int) Pitch {
	return defaultConverter.SharpsToPitch(sharps)
}

// PitchToSharps is Converter.PitchToSharps on a shared default converter.
func PitchToSharps(p Pitch, mode Mode) (int, error) {
	return defaultConverter.PitchToSharps(p, mode)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
