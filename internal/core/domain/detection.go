package domain

import (
	"math"
	"slices"
)

// Weights are the relative contributions of each signal kind to a confidence score.
type Weights struct {
	Directories float64 `mapstructure:"directories"`
	Files       float64 `mapstructure:"files"`
	Frameworks  float64 `mapstructure:"frameworks"`
	Keywords    float64 `mapstructure:"keywords"`
}

const weightTolerance = 1e-9

// DefaultWeights returns the stock weighting of 0.3/0.2/0.3/0.2.
func DefaultWeights() Weights {
	return Weights{
		Directories: 0.3,
		Files:       0.2,
		Frameworks:  0.3,
		Keywords:    0.2,
	}
}

// Validate reports ErrInvalidWeights when a weight is negative or the weights do not sum to 1.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Directories, w.Files, w.Frameworks, w.Keywords} {
		if v < 0 || math.IsNaN(v) {
			return ErrInvalidWeights
		}
	}
	if math.Abs(w.Directories+w.Files+w.Frameworks+w.Keywords-1) > weightTolerance {
		return ErrInvalidWeights
	}
	return nil
}

// SignalScore holds the four fractional match scores for one domain.
type SignalScore struct {
	Directories float64
	Files       float64
	Frameworks  float64
	Keywords    float64

	// KeywordsSkipped is set when the structural signals alone reached the threshold.
	KeywordsSkipped bool
}

// Preliminary is the confidence contributed by the structural signals only.
func (s SignalScore) Preliminary(w Weights) float64 {
	return s.Directories*w.Directories + s.Files*w.Files + s.Frameworks*w.Frameworks
}

// Confidence is the full weighted sum.
func (s SignalScore) Confidence(w Weights) float64 {
	return s.Preliminary(w) + s.Keywords*w.Keywords
}

// DetectionResult is a single detected domain.
type DetectionResult struct {
	Name       string  `yaml:"name" json:"name"`
	Confidence float64 `yaml:"confidence" json:"confidence"`
	Primary    bool    `yaml:"primary,omitempty" json:"primary,omitempty"`
}

// RoundConfidence rounds a confidence to two decimal places.
func RoundConfidence(c float64) float64 {
	return math.Round(c*100) / 100
}

// RankResults sorts results by descending confidence, keeping input order on ties,
// and marks the first one as primary. The input slice is reordered in place.
func RankResults(results []DetectionResult) []DetectionResult {
	slices.SortStableFunc(results, func(a, b DetectionResult) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		default:
			return 0
		}
	})
	for i := range results {
		results[i].Primary = i == 0
	}
	return results
}
