package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/RyuKangIn/GPT-Killer-Killer/internal/config"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/utils/httputils"
)

func testGate() config.GateConfig {
	return config.GateConfig{MinRunes: 300, MinHangulRatio: 0.8}
}

// koreanText returns valid Korean input of well over 300 runes.
func koreanText() string {
	return strings.TrimSpace(strings.Repeat("가나다라마바사아자차 ", 40))
}

func badRequest(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	httpErr, ok := err.(*httputils.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.Code)
	}
}

func TestValidateTextAccepts(t *testing.T) {
	text, err := ValidateText("  "+koreanText()+"  ", testGate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != koreanText() {
		t.Fatalf("expected trimmed text back")
	}
}

func TestValidateTextRejectsShort(t *testing.T) {
	_, err := ValidateText("짧은 한국어 문장입니다.", testGate())
	badRequest(t, err)
}

func TestValidateTextRejectsExactly300Runes(t *testing.T) {
	_, err := ValidateText(strings.Repeat("가", 300), testGate())
	badRequest(t, err)
}

func TestValidateTextAccepts301Runes(t *testing.T) {
	if _, err := ValidateText(strings.Repeat("가", 301), testGate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateTextRejectsNonKorean(t *testing.T) {
	english := strings.Repeat("only english words here ", 20)
	_, err := ValidateText(english, testGate())
	badRequest(t, err)
}

func TestValidateTextRejectsMixedBelowRatio(t *testing.T) {
	// Half Hangul, half Latin: ratio 0.5 is under the 0.8 threshold.
	mixed := strings.Repeat("가나다 abc ", 60)
	_, err := ValidateText(mixed, testGate())
	badRequest(t, err)
}

func TestValidateTextHangulSyllableBlock(t *testing.T) {
	if !isHangulSyllable('가') || !isHangulSyllable('힣') {
		t.Fatalf("expected block boundaries to count as Hangul")
	}
	if isHangulSyllable('a') || isHangulSyllable('ㄱ') {
		t.Fatalf("expected Latin and Jamo to not count")
	}
}
