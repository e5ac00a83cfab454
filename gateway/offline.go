package gateway

import (
	"chat-room/contract"
	"chat-room/domain"
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

var (
	_ contract.Embedder  = (*HashEmbedder)(nil)
	_ contract.Completer = (*Echo)(nil)
)

const DefaultOfflineDimensions = 384

// HashEmbedder derives a deterministic unit vector from the text hash.
// Identical texts get identical vectors, nothing else is meaningful.
type HashEmbedder struct {
	dimensions int
}

func NewHashEmbedder(dimensions int) *HashEmbedder {
	if dimensions <= 0 {
		dimensions = DefaultOfflineDimensions
	}
	return &HashEmbedder{dimensions: dimensions}
}

func (h *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(text))
	seed := hash.Sum64()

	vector := make([]float32, h.dimensions)
	for i := range vector {
		seed = seed*6364136223846793005 + 1442695040888963407
		vector[i] = float32(int64(seed)) / float32(math.MaxInt64)
	}
	return normalize(vector), nil
}

func (h *HashEmbedder) Dimensions() int {
	return h.dimensions
}

func normalize(vector []float32) []float32 {
	var norm float64
	for _, v := range vector {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vector
	}
	norm = math.Sqrt(norm)
	for i, v := range vector {
		vector[i] = float32(float64(v) / norm)
	}
	return vector
}

// Echo answers with the last user utterance and how much context it was given.
type Echo struct{}

func (Echo) Complete(_ context.Context, segments []domain.Segment) (domain.Completion, error) {
	system, conversation := splitSystem(segments)
	var utterance string
	for _, s := range conversation {
		if s.Role == domain.RoleUser {
			utterance = s.Content
		}
	}
	tokens := len(strings.Fields(system)) + len(strings.Fields(utterance))
	return domain.Completion{
		Text:       fmt.Sprintf("echo: %s", utterance),
		TokenCount: tokens,
		Metadata: map[string]any{
			domain.MetadataProvider: "offline",
			"context_segments":      len(segments) - len(conversation),
		},
	}, nil
}
