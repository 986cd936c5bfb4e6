package detector

// Normalization bounds and aggregation weights. These were tuned together
// with the label thresholds and are deliberately not configuration.
const (
	ttrLow  = 0.3 // TTR maps [0.3, 0.8] -> [1, 0]
	ttrHigh = 0.8

	burstinessCeil  = 0.8 // [0, 0.8] -> [1, 0], uniform lengths read as AI
	formalCeil      = 0.8 // [0, 0.8] -> [0, 1]
	connectivesCeil = 0.8 // [0, 0.8] -> [0, 1]
	repetitionCeil  = 0.2 // [0, 0.2] -> [0, 1]

	weightTTR         = 0.30
	weightBurstiness  = 0.20
	weightFormal      = 0.20
	weightConnectives = 0.15
	weightRepetition  = 0.15

	// Texts under this many tokens carry low signal; a flat penalty pulls
	// their score toward the uncertain band instead of an extreme.
	shortTextTokens  = 30
	shortTextPenalty = 0.1
)

// SubScoreSet holds the normalized per-feature scores plus the raw and final
// combined scores. JSON keys are part of the response contract.
type SubScoreSet struct {
	TTRScore         float64 `json:"ttr_score"`
	BurstinessScore  float64 `json:"burstiness_score"`
	FormalScore      float64 `json:"formal_score"`
	ConnectivesScore float64 `json:"connectives_score"`
	RepetitionScore  float64 `json:"repetition_score"`
	AIScoreRaw       float64 `json:"ai_score_raw"`
	AIScore          float64 `json:"ai_score"`
}

// ScoreAILikelihood maps a FeatureSet to sub-scores and the combined AI
// likelihood. Lower lexical diversity, more uniform sentence lengths, more
// formal endings, denser connectives and heavier repetition all push toward
// AI-likely. Pure and total.
func ScoreAILikelihood(f FeatureSet) SubScoreSet {
	basePenalty := 0.0
	if f.LengthTokens < shortTextTokens {
		basePenalty = shortTextPenalty
	}

	ttrScore := 1.0 - clamp01((f.TypeTokenRatio-ttrLow)/(ttrHigh-ttrLow))
	burstScore := 1.0 - clamp01(f.SentenceBurstiness/burstinessCeil)
	formalScore := clamp01(f.FormalEndingRatio / formalCeil)
	connScore := clamp01(f.ConnectivesPerSentence / connectivesCeil)
	repScore := clamp01(f.RepetitionRatio / repetitionCeil)

	raw := weightTTR*ttrScore +
		weightBurstiness*burstScore +
		weightFormal*formalScore +
		weightConnectives*connScore +
		weightRepetition*repScore

	return SubScoreSet{
		TTRScore:         ttrScore,
		BurstinessScore:  burstScore,
		FormalScore:      formalScore,
		ConnectivesScore: connScore,
		RepetitionScore:  repScore,
		AIScoreRaw:       raw,
		AIScore:          clamp01(raw + basePenalty),
	}
}

// Labels produced by LabelFromScore.
const (
	LabelAILikely    = "AI_LIKELY"
	LabelUncertain   = "UNCERTAIN"
	LabelHumanLikely = "HUMAN_LIKELY"
)

// LabelFromScore buckets a final score. Boundary values belong to the
// higher-labeled branch.
func LabelFromScore(score float64) string {
	switch {
	case score >= 0.7:
		return LabelAILikely
	case score >= 0.4:
		return LabelUncertain
	default:
		return LabelHumanLikely
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
