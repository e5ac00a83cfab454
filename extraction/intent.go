package extraction

import (
	"slices"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// DefaultSavePhrases are the phrases a user has to write for facts to be persisted.
var DefaultSavePhrases = []string{
	"remember that",
	"please remember",
	"save my",
	"don't forget",
	"do not forget",
	"remember my",
	"store my",
	"can you remember",
}

var defaultSaveIntent = mustSaveIntent(DefaultSavePhrases)

// SaveIntent matches explicit save phrases as whole words, case-insensitively.
type SaveIntent struct {
	matcher *goahocorasick.Machine
}

// NewSaveIntent initializes the Aho-Corasick automaton with the normalized phrases.
func NewSaveIntent(phrases []string) (*SaveIntent, error) {
	patterns := make([][]rune, 0, len(phrases))
	for _, phrase := range phrases {
		normalized := normalizeRunes([]rune(phrase))
		if len(normalized) == 0 {
			continue
		}
		patterns = append(patterns, normalized)
	}
	patterns = lo.UniqBy(patterns, func(p []rune) string { return string(p) })
	slices.SortFunc(patterns, func(a, b []rune) int { return strings.Compare(string(a), string(b)) })

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &SaveIntent{matcher: m}, nil
}

func mustSaveIntent(phrases []string) *SaveIntent {
	intent, err := NewSaveIntent(phrases)
	if err != nil {
		panic(err)
	}
	return intent
}

// IsExplicitSave reports whether text contains one of the default save phrases.
func IsExplicitSave(text string) bool {
	return defaultSaveIntent.Matches(text)
}

// Matches reports whether one of the phrases occurs in text on word boundaries.
func (s *SaveIntent) Matches(text string) bool {
	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return false
	}
	for _, term := range s.matcher.MultiPatternSearch(normalized, false) {
		start := term.Pos
		end := start + len(term.Word)
		if start < 0 || end > len(normalized) {
			continue
		}
		if start > 0 && isWordRune(normalized[start-1]) {
			continue
		}
		if end < len(normalized) && isWordRune(normalized[end]) {
			continue
		}
		return true
	}
	return false
}

// normalizeRunes lowercases, folds typographic apostrophes and collapses whitespace runs.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	lastSpace := true
	for _, r := range input {
		switch {
		case unicode.IsSpace(r):
			if lastSpace {
				continue
			}
			r = ' '
			lastSpace = true
		case r == '’' || r == '‘':
			r = '\''
			lastSpace = false
		default:
			r = unicode.ToLower(r)
			lastSpace = false
		}
		out = append(out, r)
	}
	return []rune(strings.TrimRight(string(out), " "))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
