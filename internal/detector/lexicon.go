package detector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the fixed lexical resources the feature extractor matches
// against. It is injected at construction time and never mutated afterwards.
type Lexicon struct {
	Connectives   []string `yaml:"connectives"`
	FormalEndings []string `yaml:"formal_endings"`
}

// DefaultLexicon returns the Korean lexicon the label thresholds were tuned
// against: eleven logical connectives and the two formal sentence endings
// (니다 / 다) in their three punctuation variants.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Connectives: []string{
			"또한", "하지만", "그러나", "결론적으로", "요약하자면",
			"게다가", "한편", "따라서", "즉", "때문에", "그럼에도",
		},
		FormalEndings: []string{
			"니다.", "니다!", "니다?",
			"다.", "다!", "다?",
		},
	}
}

// LoadLexicon reads a YAML lexicon file. Fields missing from the file keep
// their default values, so a file may override only the connectives or only
// the endings.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("read lexicon: %w", err)
	}
	lex := DefaultLexicon()
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	if len(lex.Connectives) == 0 {
		return Lexicon{}, fmt.Errorf("lexicon %s: connectives must not be empty", path)
	}
	if len(lex.FormalEndings) == 0 {
		return Lexicon{}, fmt.Errorf("lexicon %s: formal_endings must not be empty", path)
	}
	return lex, nil
}
