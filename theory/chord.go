package theory

// Chord is an unordered set of spelled pitches, just enough chord model to
// infer a tonal center: root detection by stacked thirds and triad-quality
// classification.
type Chord struct {
	Pitches []Pitch `json:"pitches"`
}

// NewChord creates a chord from the given pitches.
func NewChord(pitches ...Pitch) *Chord {
	return &Chord{Pitches: pitches}
}

// Root returns the chord member that best explains the others as stacked
// thirds and fifths above it. Ties resolve to the earliest listed pitch.
func (c *Chord) Root() (Pitch, error) {
	if len(c.Pitches) == 0 {
		return Pitch{}, ErrEmptyChord
	}

	best := c.Pitches[0]
	bestScore := -1
	for _, candidate := range c.Pitches {
		score := 0
		for _, p := range c.Pitches {
			switch ((p.Class() - candidate.Class()) + 12) % 12 {
			case 0:
				score += 1
			case 3, 4: // third above the candidate
				score += 2
			case 7: // fifth above the candidate
				score += 2
			}
		}
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, nil
}

// IsMinorTriad reports whether the pitch classes form exactly a minor
// triad over the detected root.
func (c *Chord) IsMinorTriad() bool {
	return c.matchesTriad(3)
}

// IsMajorTriad reports whether the pitch classes form exactly a major
// triad over the detected root.
func (c *Chord) IsMajorTriad() bool {
	return c.matchesTriad(4)
}

func (c *Chord) matchesTriad(third int) bool {
	root, err := c.Root()
	if err != nil {
		return false
	}
	want := map[int]bool{0: false, third: false, 7: false}
	for _, p := range c.Pitches {
		rel := ((p.Class() - root.Class()) + 12) % 12
		if _, ok := want[rel]; !ok {
			return false
		}
		want[rel] = true
	}
	return want[0] && want[third] && want[7]
}
