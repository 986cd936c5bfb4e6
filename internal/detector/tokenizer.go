package detector

import (
	"regexp"
	"strings"
)

var (
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

	// \s alone is ASCII-only here; CJK typography separates sentences with
	// U+3000 and friends, so the class carries the full Unicode whitespace
	// set (separators, NBSP via Zs, vertical tab, NEL, the 1C-1F range).
	sentenceBreaks = regexp.MustCompile(`[.!?][\s\x{0B}\x{1C}-\x{1F}\x{85}\p{Z}]+|\n+`)
)

// Tokenize extracts maximal runs of word characters (letters including
// Hangul, digits, underscore) in source order. Duplicates are kept and no
// normalization is applied.
func Tokenize(text string) []string {
	raw := wordPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if strings.TrimSpace(t) != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// SplitSentences splits text at terminal punctuation (. ! ?) followed by
// whitespace, or at runs of newlines. Terminal punctuation stays with the
// fragment to its left so formal-ending suffixes survive the split.
// Fragments are trimmed and empty ones dropped, so the result may be empty.
func SplitSentences(text string) []string {
	sentences := []string{}
	start := 0
	for _, m := range sentenceBreaks.FindAllStringIndex(text, -1) {
		end := m[0]
		switch text[m[0]] {
		case '.', '!', '?':
			end = m[0] + 1
		}
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = m[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
