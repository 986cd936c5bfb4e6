package detector

import (
	"fmt"
	"strings"
	"testing"
)

func TestAnalyzeIdempotent(t *testing.T) {
	d := newTestDetector()
	text := "이 보고서는 실험 결과를 정리한 것입니다. 또한 향후 계획도 포함합니다."
	first := d.Analyze(text)
	second := d.Analyze(text)
	if first != second {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestAnalyzeUniformFormalTextScoresAILikely(t *testing.T) {
	d := newTestDetector()
	// Identical formal sentences: minimal diversity, zero burstiness, all
	// formal endings, heavy repetition.
	text := strings.TrimSpace(strings.Repeat("이 제품은 매우 좋습니다. ", 20))
	result := d.Analyze(text)
	if result.Label != LabelAILikely {
		t.Fatalf("expected AI_LIKELY, got %s (score %f)", result.Label, result.AIScore)
	}
	if result.Meta.SentenceBurstiness != 0 {
		t.Fatalf("expected zero burstiness for uniform sentences, got %f", result.Meta.SentenceBurstiness)
	}
	if !almostEqual(result.Meta.FormalEndingRatio, 1.0) {
		t.Fatalf("expected all-formal endings, got %f", result.Meta.FormalEndingRatio)
	}
}

func TestAnalyzeVariedTextScoresHumanLikely(t *testing.T) {
	d := newTestDetector()
	// Fully distinct vocabulary in strongly varied sentence lengths, no
	// formal endings, no connectives.
	next := 0
	sentence := func(n int) string {
		words := make([]string, n)
		for i := range words {
			words[i] = fmt.Sprintf("어절%d", next)
			next++
		}
		return strings.Join(words, " ")
	}
	text := sentence(1) + ". " + sentence(12) + ". " + sentence(2) + ". " + sentence(15) + "."
	result := d.Analyze(text)
	if result.Label != LabelHumanLikely {
		t.Fatalf("expected HUMAN_LIKELY, got %s (score %f)", result.Label, result.AIScore)
	}
	if !almostEqual(result.Meta.TypeTokenRatio, 1.0) {
		t.Fatalf("expected fully distinct tokens, got ttr %f", result.Meta.TypeTokenRatio)
	}
}

func TestAnalyzeScoreAlwaysBounded(t *testing.T) {
	d := newTestDetector()
	inputs := []string{
		"",
		"!!!",
		"한국어 문장입니다.",
		strings.Repeat("같은 단어 ", 500),
		"English only text with no Hangul at all.",
		"짧다",
	}
	for _, text := range inputs {
		result := d.Analyze(text)
		if result.AIScore < 0 || result.AIScore > 1 {
			t.Fatalf("ai_score out of range for %q: %f", text, result.AIScore)
		}
		switch result.Label {
		case LabelAILikely, LabelUncertain, LabelHumanLikely:
		default:
			t.Fatalf("unexpected label %q", result.Label)
		}
	}
}

func TestAnalyzeResultMirrorsSubScores(t *testing.T) {
	d := newTestDetector()
	result := d.Analyze("결론적으로 이 방법은 효과적입니다. 따라서 채택을 권장합니다.")
	if result.AIScore != result.FeatureScores.AIScore {
		t.Fatalf("top-level ai_score must equal feature_scores.ai_score")
	}
	if result.Label != LabelFromScore(result.AIScore) {
		t.Fatalf("label must derive from the final score")
	}
}
