// Package detector estimates how likely a Korean text was produced by a
// generative AI model using surface linguistic statistics only. The whole
// pipeline is a pure function of the input string: no state survives a call
// and concurrent calls never interact.
package detector

// Detector runs the feature extraction and scoring pipeline against a fixed
// lexicon. Safe for concurrent use.
type Detector struct {
	lexicon     Lexicon
	connectives map[string]struct{}
}

// New builds a Detector from the given lexicon.
func New(lexicon Lexicon) *Detector {
	connectives := make(map[string]struct{}, len(lexicon.Connectives))
	for _, c := range lexicon.Connectives {
		connectives[c] = struct{}{}
	}
	return &Detector{
		lexicon:     lexicon,
		connectives: connectives,
	}
}

// Result is the full scoring output for one text.
type Result struct {
	AIScore       float64     `json:"ai_score"`
	Label         string      `json:"label"`
	FeatureScores SubScoreSet `json:"feature_scores"`
	Meta          FeatureSet  `json:"meta"`
}

// Analyze runs the full pipeline: features, sub-scores, final score, label.
func (d *Detector) Analyze(text string) Result {
	features := d.ComputeFeatures(text)
	scores := ScoreAILikelihood(features)
	return Result{
		AIScore:       scores.AIScore,
		Label:         LabelFromScore(scores.AIScore),
		FeatureScores: scores,
		Meta:          features,
	}
}
