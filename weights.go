package pagesig

// WeightConfig holds the five metric weights for composite scoring.
// Weights must be non-negative; they are normalized to sum to 1 before use.
type WeightConfig struct {
	Relevancy float64 `json:"relevancy" yaml:"relevancy"`
	WordCount float64 `json:"wordCount" yaml:"wordCount"`
	Links     float64 `json:"links" yaml:"links"`
	Sections  float64 `json:"sections" yaml:"sections"`
	Author    float64 `json:"author" yaml:"author"`
}

// DefaultWeights returns an equal weighting of all five metrics.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		Relevancy: 0.2,
		WordCount: 0.2,
		Links:     0.2,
		Sections:  0.2,
		Author:    0.2,
	}
}

// Validate returns an error if any weight is negative.
func (w WeightConfig) Validate() error {
	for _, v := range []float64{w.Relevancy, w.WordCount, w.Links, w.Sections, w.Author} {
		if v < 0 {
			return Errorf(EINVALID, "weights must be non-negative")
		}
	}
	return nil
}

// Normalized returns a copy of w scaled so the weights sum to 1.
// Returns ok=false when all weights are zero; callers must then define
// every composite score as 0 rather than dividing by zero.
func (w WeightConfig) Normalized() (_ WeightConfig, ok bool) {
	sum := w.Relevancy + w.WordCount + w.Links + w.Sections + w.Author
	if sum == 0 {
		return WeightConfig{}, false
	}
	return WeightConfig{
		Relevancy: w.Relevancy / sum,
		WordCount: w.WordCount / sum,
		Links:     w.Links / sum,
		Sections:  w.Sections / sum,
		Author:    w.Author / sum,
	}, true
}
