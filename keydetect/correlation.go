package keydetect

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

const numPitchClasses = 12

// stdDev threshold below which a distribution counts as constant.
const minStdDev = 1e-12

// Estimate is one key candidate: a tonic pitch class and the score its
// rotation of the weight profile achieved against the distribution.
type Estimate struct {
	PitchClass int     `json:"pitch_class"`
	Score      float64 `json:"score"`
}

// ValidateDistribution checks that dist is a usable pitch-class
// distribution: exactly 12 values, none negative.
func ValidateDistribution(dist []float64) error {
	if len(dist) != numPitchClasses {
		return fmt.Errorf("%w: got %d values", ErrInvalidDistribution, len(dist))
	}
	for i, v := range dist {
		if v < 0 {
			return fmt.Errorf("%w: negative count %g at pitch class %d", ErrInvalidDistribution, v, i)
		}
	}
	return nil
}

// Convolute scores each candidate tonic by circular cross-correlation of
// the distribution against the weight vector:
//
//	scores[i] = sum_j weights[(j-i) mod 12] * dist[j]
//
// Rotating the distribution by r positions rotates the scores by r
// positions. Scores scale with the total mass of the distribution; use
// CorrelateProfile for magnitude-invariant scores.
func Convolute(dist, weights []float64) ([]float64, error) {
	if err := ValidateDistribution(dist); err != nil {
		return nil, err
	}
	if len(weights) != numPitchClasses {
		return nil, fmt.Errorf("%w: weight vector has %d values", ErrInvalidDistribution, len(weights))
	}

	scores := make([]float64, numPitchClasses)
	for i := range scores {
		for j, d := range dist {
			scores[i] += weights[((j-i)%numPitchClasses+numPitchClasses)%numPitchClasses] * d
		}
	}
	return scores, nil
}

// ConvoluteFFT computes the same circular cross-correlation as Convolute
// in the frequency domain: IFFT(FFT(dist) * conj(FFT(weights))). For a
// 12-point sequence the direct form is not slower, but the FFT path is
// kept as an independent implementation of the same contract.
func ConvoluteFFT(dist, weights []float64) ([]float64, error) {
	if err := ValidateDistribution(dist); err != nil {
		return nil, err
	}
	if len(weights) != numPitchClasses {
		return nil, fmt.Errorf("%w: weight vector has %d values", ErrInvalidDistribution, len(weights))
	}

	distF := fft.FFTReal(dist)
	weightsF := fft.FFTReal(weights)

	cross := make([]complex128, numPitchClasses)
	for i := range cross {
		cross[i] = distF[i] * cmplx.Conj(weightsF[i])
	}

	corr := fft.IFFT(cross)
	scores := make([]float64, numPitchClasses)
	for i := range scores {
		scores[i] = real(corr[i])
	}
	return scores, nil
}

// CorrelateProfile scores each candidate tonic by the Pearson correlation
// coefficient between the distribution and the rotated weight vector.
// Scores are bounded to [-1, 1] and comparable across distributions of
// different total mass. A zero-variance distribution has no defined
// correlation and returns ErrDegenerateDistribution.
func CorrelateProfile(dist, weights []float64) ([]float64, error) {
	if err := ValidateDistribution(dist); err != nil {
		return nil, err
	}
	if len(weights) != numPitchClasses {
		return nil, fmt.Errorf("%w: weight vector has %d values", ErrInvalidDistribution, len(weights))
	}
	if stat.StdDev(dist, nil) < minStdDev {
		return nil, ErrDegenerateDistribution
	}

	scores := make([]float64, numPitchClasses)
	rotated := make([]float64, numPitchClasses)
	for i := range scores {
		for j := range rotated {
			rotated[j] = weights[((j-i)%numPitchClasses+numPitchClasses)%numPitchClasses]
		}
		scores[i] = stat.Correlation(dist, rotated, nil)
	}
	return scores, nil
}

// RankCandidates orders all 12 candidates by descending score. Ties keep
// ascending pitch-class order, so the ranking is deterministic.
func RankCandidates(scores []float64) []Estimate {
	ranked := make([]Estimate, len(scores))
	for i, s := range scores {
		ranked[i] = Estimate{PitchClass: i, Score: s}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})
	return ranked
}
