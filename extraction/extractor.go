// Package extraction turns a chat utterance into candidate user facts
// and decides whether the user explicitly asked for them to be kept.
package extraction

import (
	"chat-room/domain"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

const (
	sourceRegex        = "regex"
	birthdayConfidence = 0.95
	nameConfidence     = 0.8
)

// birthdayPatterns are evaluated independently, each contributes its first match.
var birthdayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:my )?birthday is (?:on )?([A-Za-z0-9,\-\s]+)`),
	regexp.MustCompile(`(?i)(?:i was )?born on ([A-Za-z0-9,\-/\s]+)`),
	regexp.MustCompile(`(?i)birthday: (\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(?i)born (?:on )?([A-Za-z0-9,\-/\s]+)`),
}

// namePattern only accepts a capitalised name after a case-insensitive introduction.
var namePattern = regexp.MustCompile(`^(?i:i(?:'|’| )?m|i am)\s+([A-Z][a-zA-Z\-']+)`)

// Extract returns the fact candidates found in text, without touching any store.
func Extract(text string) []domain.Candidate {
	var candidates []domain.Candidate

	for _, pattern := range birthdayPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		raw := strings.TrimSpace(match[1])
		if raw == "" {
			continue
		}
		candidate := domain.Candidate{
			Type:       domain.FactBirthday,
			Value:      raw,
			Confidence: birthdayConfidence,
			Source:     sourceRegex,
		}
		if normalized, ok := NormalizeDate(raw); ok {
			candidate.Normalized = lo.ToPtr(normalized)
		}
		candidates = append(candidates, candidate)
	}

	if match := namePattern.FindStringSubmatch(strings.TrimSpace(text)); match != nil {
		candidates = append(candidates, domain.Candidate{
			Type:       domain.FactName,
			Value:      match[1],
			Normalized: lo.ToPtr(match[1]),
			Confidence: nameConfidence,
			Source:     sourceRegex,
		})
	}

	// Several birthday patterns usually catch the same phrase
	return lo.UniqBy(candidates, func(c domain.Candidate) string {
		return string(c.Type) + "\x00" + c.Value
	})
}
