package detector

import (
	"math"
	"strings"
)

// FeatureSet holds the seven raw linguistic measurements for one text.
// JSON keys are part of the response contract.
type FeatureSet struct {
	LengthTokens           float64 `json:"length_tokens"`
	TypeTokenRatio         float64 `json:"type_token_ratio"`
	AvgSentenceLen         float64 `json:"avg_sentence_len"`
	SentenceBurstiness     float64 `json:"sentence_burstiness"`
	RepetitionRatio        float64 `json:"repetition_ratio"`
	FormalEndingRatio      float64 `json:"formal_ending_ratio"`
	ConnectivesPerSentence float64 `json:"connectives_per_sentence"`
}

// ComputeFeatures measures the text. It is total: a text with no tokens
// yields the zero FeatureSet, and a text with no sentence delimiter counts
// as a single sentence for every division.
func (d *Detector) ComputeFeatures(text string) FeatureSet {
	sentences := SplitSentences(text)
	tokens := Tokenize(text)
	nTokens := len(tokens)
	nSent := len(sentences)
	if nSent == 0 {
		nSent = 1
	}

	if nTokens == 0 {
		return FeatureSet{}
	}

	unique := make(map[string]struct{}, nTokens)
	counts := make(map[string]int, nTokens)
	maxFreq := 0
	connectiveCount := 0
	for _, t := range tokens {
		unique[t] = struct{}{}
		counts[t]++
		if counts[t] > maxFreq {
			maxFreq = counts[t]
		}
		if _, ok := d.connectives[t]; ok {
			connectiveCount++
		}
	}

	// Sentence lengths come from re-tokenizing each sentence on its own,
	// not from slicing the whole-text token list.
	sentLens := make([]float64, len(sentences))
	lenSum := 0.0
	for i, s := range sentences {
		sentLens[i] = float64(len(Tokenize(s)))
		lenSum += sentLens[i]
	}
	avgSentenceLen := lenSum / float64(nSent)

	// Burstiness is the coefficient of variation of sentence lengths using
	// the sample standard deviation (n-1).
	std := 0.0
	if len(sentLens) > 1 {
		variance := 0.0
		for _, l := range sentLens {
			diff := l - avgSentenceLen
			variance += diff * diff
		}
		variance /= float64(len(sentLens) - 1)
		std = math.Sqrt(variance)
	}
	burstiness := 0.0
	if avgSentenceLen > 0 {
		burstiness = std / avgSentenceLen
	}

	formalCount := 0
	for _, s := range sentences {
		for _, ending := range d.lexicon.FormalEndings {
			if strings.HasSuffix(s, ending) {
				formalCount++
				break
			}
		}
	}

	return FeatureSet{
		LengthTokens:           float64(nTokens),
		TypeTokenRatio:         float64(len(unique)) / float64(nTokens),
		AvgSentenceLen:         avgSentenceLen,
		SentenceBurstiness:     burstiness,
		RepetitionRatio:        float64(maxFreq) / float64(nTokens),
		FormalEndingRatio:      float64(formalCount) / float64(nSent),
		ConnectivesPerSentence: float64(connectiveCount) / float64(nSent),
	}
}
