package keydetect

import (
	"errors"
	"fmt"

	"github.com/tonalkit/tonalkit/logging"
	"github.com/tonalkit/tonalkit/theory"
)

// MeasureSource supplies pitch-class histograms for measure ranges of a
// score. The engine never parses scores itself; any score representation
// that can count pitch classes over a measure range can drive it.
type MeasureSource interface {
	// MeasureCount returns the number of measures in the score.
	MeasureCount() int

	// PitchClassDistribution returns the 12-element pitch-class histogram
	// of measures [start, end).
	PitchClassDistribution(start, end int) ([]float64, error)
}

// WindowEstimate is the key estimate for one window of measures.
// Undetermined marks windows whose distribution had no usable tonal
// content (a run of silent measures, for example); Key is nil for those.
type WindowEstimate struct {
	Start        int         `json:"start"`
	Size         int         `json:"size"`
	Key          *theory.Key `json:"-"`
	Undetermined bool        `json:"undetermined"`
}

func (w WindowEstimate) String() string {
	if w.Undetermined {
		return fmt.Sprintf("[%d..%d) undetermined", w.Start, w.Start+w.Size)
	}
	return fmt.Sprintf("[%d..%d) %s (%.3f)", w.Start, w.Start+w.Size, w.Key, w.Key.CorrelationScore)
}

// WindowedDetector slides a fixed-size measure window over a score and
// re-estimates the key per window, producing the key trajectory of the
// piece.
type WindowedDetector struct {
	detector *Detector
	log      logging.Logger
}

// NewWindowedDetector wraps a single-window detector.
func NewWindowedDetector(d *Detector) *WindowedDetector {
	return &WindowedDetector{
		detector: d,
		log:      logging.WithFields(logging.Fields{"component": "keydetect.window"}),
	}
}

// Trajectory estimates the key of every contiguous window of windowSize
// measures, one estimate per start position 0..MeasureCount-windowSize.
// A window whose distribution is degenerate is recorded as Undetermined
// and never aborts the run. A window size larger than the score yields an
// empty trajectory without error.
func (wd *WindowedDetector) Trajectory(src MeasureSource, windowSize int) ([]WindowEstimate, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, windowSize)
	}
	total := src.MeasureCount()
	if windowSize > total {
		return []WindowEstimate{}, nil
	}

	trajectory := make([]WindowEstimate, 0, total-windowSize+1)
	for start := 0; start <= total-windowSize; start++ {
		dist, err := src.PitchClassDistribution(start, start+windowSize)
		if err != nil {
			return nil, fmt.Errorf("keydetect: window [%d..%d): %w", start, start+windowSize, err)
		}

		key, err := wd.detector.DetectKey(dist)
		switch {
		case errors.Is(err, ErrDegenerateDistribution):
			wd.log.Warn("window undetermined", logging.Fields{"start": start, "size": windowSize})
			trajectory = append(trajectory, WindowEstimate{Start: start, Size: windowSize, Undetermined: true})
		case err != nil:
			return nil, fmt.Errorf("keydetect: window [%d..%d): %w", start, start+windowSize, err)
		default:
			trajectory = append(trajectory, WindowEstimate{Start: start, Size: windowSize, Key: key})
		}
	}
	return trajectory, nil
}

// Sweep runs Trajectory for every window size from minWindow up to the
// full length of the score, one row per size. A score shorter than
// minWindow yields an empty matrix.
func (wd *WindowedDetector) Sweep(src MeasureSource, minWindow int) ([][]WindowEstimate, error) {
	if minWindow <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, minWindow)
	}
	total := src.MeasureCount()
	if minWindow > total {
		return [][]WindowEstimate{}, nil
	}

	matrix := make([][]WindowEstimate, 0, total-minWindow+1)
	for size := minWindow; size <= total; size++ {
		row, err := wd.Trajectory(src, size)
		if err != nil {
			return nil, err
		}
		matrix = append(matrix, row)
	}
	return matrix, nil
}

// SliceSource is an in-memory MeasureSource over per-measure pitch-class
// histograms.
type SliceSource struct {
	Measures [][]float64
}

// MeasureCount returns the number of measures.
func (s SliceSource) MeasureCount() int {
	return len(s.Measures)
}

// PitchClassDistribution sums the histograms of measures [start, end).
func (s SliceSource) PitchClassDistribution(start, end int) ([]float64, error) {
	if start < 0 || end > len(s.Measures) || start >= end {
		return nil, fmt.Errorf("keydetect: measure range [%d..%d) out of bounds (have %d measures)", start, end, len(s.Measures))
	}
	dist := make([]float64, numPitchClasses)
	for _, measure := range s.Measures[start:end] {
		if err := ValidateDistribution(measure); err != nil {
			return nil, err
		}
		for pc, count := range measure {
			dist[pc] += count
		}
	}
	return dist, nil
}
