package runtime

import (
	"chat-room/domain"
	"regexp"
	"strings"
)

// PersonaResolver decides whether an utterance addresses an AI persona.
// It returns the persona and the text to send to it, ok is false when it does not apply.
type PersonaResolver interface {
	Resolve(in domain.Inbound, text string) (persona, prompt string, ok bool)
}

// ExplicitPersona uses the targetPersona field of a structured payload, the text is kept as is.
type ExplicitPersona struct{}

func (ExplicitPersona) Resolve(in domain.Inbound, text string) (string, string, bool) {
	if in.TargetPersona == "" {
		return "", "", false
	}
	return in.TargetPersona, text, true
}

var mentionPattern = regexp.MustCompile(`(?s)^@([A-Za-z0-9_-]+)\s+(.+)$`)

// MentionPersona recognises a leading "@Name rest" and strips the mention.
type MentionPersona struct{}

func (MentionPersona) Resolve(_ domain.Inbound, text string) (string, string, bool) {
	match := mentionPattern.FindStringSubmatch(text)
	if match == nil {
		return "", "", false
	}
	prompt := strings.TrimSpace(match[2])
	if prompt == "" {
		return "", "", false
	}
	return match[1], prompt, true
}

// DefaultPersonaResolvers checks the explicit field before any mention.
func DefaultPersonaResolvers() []PersonaResolver {
	return []PersonaResolver{ExplicitPersona{}, MentionPersona{}}
}

// ResolvePersona returns the first persona found by the chain.
// An empty persona means the utterance must not reach the gateway.
func ResolvePersona(resolvers []PersonaResolver, in domain.Inbound, text string) (string, string) {
	for _, resolver := range resolvers {
		if persona, prompt, ok := resolver.Resolve(in, text); ok {
			return persona, prompt
		}
	}
	return "", text
}
