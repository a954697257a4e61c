package keydetect

import (
	"fmt"
	"sort"

	"github.com/tonalkit/tonalkit/logging"
	"github.com/tonalkit/tonalkit/theory"
)

// Method selects how candidate scores are computed.
type Method int

const (
	// MethodCorrelation scores candidates with the Pearson correlation
	// coefficient (bounded, magnitude-invariant). Default.
	MethodCorrelation Method = iota

	// MethodConvolution scores candidates with the raw circular
	// cross-correlation of the legacy algorithm.
	MethodConvolution

	// MethodConvolutionFFT is MethodConvolution computed in the frequency
	// domain.
	MethodConvolutionFFT
)

func (m Method) String() string {
	switch m {
	case MethodCorrelation:
		return "correlation"
	case MethodConvolution:
		return "convolution"
	case MethodConvolutionFFT:
		return "convolution-fft"
	default:
		return "unknown"
	}
}

// ParseMethod parses a method name as used in configuration files.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "", "correlation":
		return MethodCorrelation, nil
	case "convolution":
		return MethodConvolution, nil
	case "convolution-fft", "fft":
		return MethodConvolutionFFT, nil
	default:
		return 0, fmt.Errorf("keydetect: unknown method %q", name)
	}
}

// Params configures a Detector.
type Params struct {
	// Profile names the weight profile to score against. Empty selects
	// the Sapp/Krumhansl profile.
	Profile string `json:"profile" yaml:"profile"`

	// Method selects the scoring method.
	Method Method `json:"method" yaml:"method"`

	// MaxAlternates caps the alternate-interpretation list attached to
	// detected keys. Zero keeps all 23.
	MaxAlternates int `json:"max_alternates" yaml:"max_alternates"`
}

// Detector estimates the key of a pitch-class distribution by scoring all
// 24 (tonic, mode) candidates against a weight profile and ranking them.
type Detector struct {
	params  Params
	profile WeightProfile
	log     logging.Logger
}

// NewDetector creates a detector with default parameters: the Sapp
// profile and correlation scoring.
func NewDetector() *Detector {
	d, err := NewDetectorWithParams(Params{})
	if err != nil {
		// the zero Params always resolve
		panic(err)
	}
	return d
}

// NewDetectorWithParams creates a detector with custom parameters.
func NewDetectorWithParams(params Params) (*Detector, error) {
	name := params.Profile
	if name == "" {
		name = ProfileSapp.Name
	}
	profile, err := ProfileByName(name)
	if err != nil {
		return nil, err
	}
	return &Detector{
		params:  params,
		profile: profile,
		log:     logging.WithFields(logging.Fields{"component": "keydetect"}),
	}, nil
}

// Params returns the detector's parameters.
func (d *Detector) Params() Params {
	return d.params
}

// Profile returns the weight profile the detector scores against.
func (d *Detector) Profile() WeightProfile {
	return d.profile
}

func (d *Detector) score(dist []float64, major bool) ([]float64, error) {
	weights := d.profile.Weights(major)
	switch d.params.Method {
	case MethodConvolution:
		return Convolute(dist, weights)
	case MethodConvolutionFFT:
		return ConvoluteFFT(dist, weights)
	default:
		return CorrelateProfile(dist, weights)
	}
}

// DetectKey estimates the key of a 12-element pitch-class distribution.
// All 24 (tonic, mode) candidates are scored; the global best becomes the
// returned Key, carrying its score as CorrelationScore and the remaining
// 23 candidates, sorted by descending score, as AlternateInterpretations.
// The winner is excluded from the alternates. A zero-variance distribution
// under MethodCorrelation returns ErrDegenerateDistribution.
func (d *Detector) DetectKey(dist []float64) (*theory.Key, error) {
	majorScores, err := d.score(dist, true)
	if err != nil {
		return nil, err
	}
	minorScores, err := d.score(dist, false)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		pc    int
		mode  theory.Mode
		score float64
	}
	candidates := make([]candidate, 0, 2*numPitchClasses)
	for _, e := range RankCandidates(majorScores) {
		candidates = append(candidates, candidate{pc: e.PitchClass, mode: theory.ModeMajor, score: e.Score})
	}
	for _, e := range RankCandidates(minorScores) {
		candidates = append(candidates, candidate{pc: e.PitchClass, mode: theory.ModeMinor, score: e.Score})
	}
	// stable sort: major candidates precede minor on exact ties
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	best := candidates[0]
	key, err := theory.NewKeyFromPitch(theory.PitchFromClass(best.pc), best.mode)
	if err != nil {
		return nil, err
	}
	key.CorrelationScore = best.score

	alternates := candidates[1:]
	if d.params.MaxAlternates > 0 && len(alternates) > d.params.MaxAlternates {
		alternates = alternates[:d.params.MaxAlternates]
	}
	key.AlternateInterpretations = make([]theory.AlternateInterpretation, len(alternates))
	for i, c := range alternates {
		key.AlternateInterpretations[i] = theory.AlternateInterpretation{
			Tonic: theory.PitchFromClass(c.pc),
			Mode:  c.mode,
			Score: c.score,
		}
	}

	d.log.Debug("detected key", logging.Fields{
		"key":     key.String(),
		"score":   key.CorrelationScore,
		"profile": d.profile.Name,
		"method":  d.params.Method.String(),
	})
	return key, nil
}
