package lexicon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLexicon marks configuration errors that must abort startup.
var ErrInvalidLexicon = errors.New("invalid lexicon configuration")

// Entry is one weighted keyword. Weights are stored as positive magnitudes;
// the vocabulary a term belongs to determines the sign of its contribution.
type Entry struct {
	Term     string `yaml:"term"`
	Weight   int    `yaml:"weight"`
	Category string `yaml:"category"`

	normalized string
}

// Vocabulary is an ordered set of entries with unique terms.
type Vocabulary struct {
	entries []Entry
}

// Entries returns a copy of the vocabulary content.
func (v Vocabulary) Entries() []Entry {
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Len reports the number of terms.
func (v Vocabulary) Len() int { return len(v.entries) }

// Count returns per-term occurrence counts in already-normalized text.
// Matching is plain substring matching: overlapping terms each count on
// their own, and no stemming is attempted. Terms absent from the text are
// omitted from the result.
func (v Vocabulary) Count(normText string) map[string]int {
	counts := make(map[string]int)
	for _, e := range v.entries {
		if n := strings.Count(normText, e.normalized); n > 0 {
			counts[e.Term] = n
		}
	}
	return counts
}

// WeightedScore sums occurrence counts multiplied by entry weights over
// already-normalized text.
func (v Vocabulary) WeightedScore(normText string) int {
	total := 0
	for _, e := range v.entries {
		total += strings.Count(normText, e.normalized) * e.Weight
	}
	return total
}

// Lexicon holds the two opposing vocabularies, loaded once and immutable.
type Lexicon struct {
	Feminist Vocabulary
	Balance  Vocabulary
}

type lexiconFile struct {
	Feminist []Entry `yaml:"feminist_keywords"`
	Balance  []Entry `yaml:"balance_keywords"`
}

// Load reads and validates the keyword configuration file.
func Load(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	lex, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Parse validates raw YAML keyword configuration. Duplicate terms within a
// vocabulary and non-positive weights are configuration mistakes and fail
// the load.
func Parse(raw []byte) (*Lexicon, error) {
	var file lexiconFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}

	if len(file.Feminist) == 0 {
		return nil, fmt.Errorf("%w: feminist_keywords is empty", ErrInvalidLexicon)
	}

	feminist, err := buildVocabulary("feminist_keywords", file.Feminist)
	if err != nil {
		return nil, err
	}
	balance, err := buildVocabulary("balance_keywords", file.Balance)
	if err != nil {
		return nil, err
	}

	return &Lexicon{Feminist: feminist, Balance: balance}, nil
}

func buildVocabulary(name string, entries []Entry) (Vocabulary, error) {
	seen := make(map[string]string, len(entries))
	built := make([]Entry, 0, len(entries))

	for _, e := range entries {
		term := strings.TrimSpace(e.Term)
		if term == "" {
			return Vocabulary{}, fmt.Errorf("%w: empty term in %s", ErrInvalidLexicon, name)
		}
		if e.Weight <= 0 {
			return Vocabulary{}, fmt.Errorf("%w: term %q in %s has weight %d, want > 0",
				ErrInvalidLexicon, term, name, e.Weight)
		}

		normalized := Normalize(term)
		if prev, dup := seen[normalized]; dup {
			return Vocabulary{}, fmt.Errorf("%w: term %q duplicates %q in %s",
				ErrInvalidLexicon, term, prev, name)
		}
		seen[normalized] = term

		e.Term = term
		e.normalized = normalized
		built = append(built, e)
	}

	return Vocabulary{entries: built}, nil
}
