package api

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/RyuKangIn/GPT-Killer-Killer/internal/config"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/utils/httputils"
)

// ValidateText applies the input gating that must run before the detector:
// trims the text, rejects texts at or under the minimum length, texts with no
// visible characters, and texts whose Hangul share of non-whitespace
// characters is below the threshold. Returns the trimmed text.
//
// The detector itself never gates; these are caller-facing input errors.
func ValidateText(text string, gate config.GateConfig) (string, error) {
	trimmed := strings.TrimSpace(text)

	if len([]rune(trimmed)) <= gate.MinRunes {
		return "", &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("내용이 너무 짧습니다. 최소 %d자 이상이어야 합니다.", gate.MinRunes+1),
		}
	}

	nonSpace := 0
	hangul := 0
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		nonSpace++
		if isHangulSyllable(r) {
			hangul++
		}
	}
	if nonSpace == 0 {
		return "", &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "유효한 문자가 없습니다.",
		}
	}

	if float64(hangul)/float64(nonSpace) < gate.MinHangulRatio {
		return "", &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "한국어만 검사 가능합니다.",
		}
	}

	return trimmed, nil
}

// isHangulSyllable reports whether r falls in the Hangul syllable block
// (U+AC00..U+D7A3). Jamo and compatibility blocks deliberately do not count.
func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}
