package assembler

import (
	"chat-room/contract"
	"chat-room/domain"
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const DefaultTopK = 5

var _ contract.ContextAssembler = (*Assembler)(nil)

type Context = domain.PromptContext

// Assembler turns an utterance into generation segments: what is known about the
// author, what the room remembers, then the utterance itself.
type Assembler struct {
	log      *slog.Logger
	facts    contract.FactStore
	memories contract.MemoryStore
	embedder contract.Embedder
	topK     int
}

func New(log *slog.Logger, facts contract.FactStore, memories contract.MemoryStore, embedder contract.Embedder, topK int) *Assembler {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Assembler{log: log, facts: facts, memories: memories, embedder: embedder, topK: topK}
}

// Assemble never fails: a failed lookup leaves its block empty.
func (a *Assembler) Assemble(ctx context.Context, author, text string) (Context, error) {
	memoriesBlock, embedding := a.memoriesBlock(ctx, text)

	var segments []domain.Segment
	for _, block := range []string{a.factsBlock(ctx, author), memoriesBlock} {
		if block != "" {
			segments = append(segments, domain.Segment{Role: domain.RoleSystem, Content: block})
		}
	}
	segments = append(segments, domain.Segment{Role: domain.RoleUser, Content: text})

	return Context{Segments: segments, Embedding: embedding}, nil
}

func (a *Assembler) factsBlock(ctx context.Context, author string) string {
	facts, err := a.facts.GetActiveFacts(ctx, author)
	if err != nil {
		a.log.Warn("Fact lookup failed", "author", author, "error", err)
		return ""
	}
	return FormatFacts(facts)
}

func (a *Assembler) memoriesBlock(ctx context.Context, text string) (string, []float32) {
	embedding, err := a.embedder.Embed(ctx, text)
	if err != nil {
		a.log.Warn("Embedding failed, assembling without memories", "error", err)
		return "", nil
	}
	// The vector is still returned so the caller can store the new memory
	memories, err := a.memories.SearchMemory(ctx, embedding, a.topK)
	if err != nil {
		a.log.Warn("Memory search failed", "error", err)
		return "", embedding
	}
	return FormatMemories(memories), embedding
}

// FormatFacts renders the facts block, empty when there is nothing to say.
func FormatFacts(facts []domain.Fact) string {
	if len(facts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(facts))
	for _, f := range facts {
		lines = append(lines, "- "+f.Display())
	}
	return "Known facts about the user:\n" + strings.Join(lines, "\n")
}

func FormatMemories(memories []domain.MemoryEntry) string {
	if len(memories) == 0 {
		return ""
	}
	lines := make([]string, 0, len(memories))
	for _, m := range memories {
		lines = append(lines, fmt.Sprintf("- (%.3f) %s", m.Similarity, m.Content))
	}
	return "Relevant memories:\n" + strings.Join(lines, "\n")
}
