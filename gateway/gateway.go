package gateway

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/errors"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dgraph-io/ristretto/v2"
)

var _ contract.Gateway = (*Gateway)(nil)

// Gateway fronts the completion and embedding providers.
// Either provider may be nil, calls to a missing one fail with ErrProviderUnavailable.
type Gateway struct {
	log       *slog.Logger
	completer contract.Completer
	embedder  contract.Embedder
	cache     *ristretto.Cache[string, []float32]
}

// New builds a gateway. cacheSize bounds the number of cached embeddings, 0 disables the cache.
func New(log *slog.Logger, completer contract.Completer, embedder contract.Embedder, cacheSize int64) (*Gateway, error) {
	g := &Gateway{log: log, completer: completer, embedder: embedder}
	if cacheSize <= 0 {
		return g, nil
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, []float32]{
		NumCounters: cacheSize * 10,
		MaxCost:     cacheSize,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding cache: %w", err)
	}
	g.cache = cache
	return g, nil
}

func (g *Gateway) CanComplete() bool {
	return g.completer != nil
}

func (g *Gateway) CanEmbed() bool {
	return g.embedder != nil
}

func (g *Gateway) Complete(ctx context.Context, segments []domain.Segment) (domain.Completion, error) {
	if g.completer == nil {
		return domain.Completion{}, errors.ErrProviderUnavailable
	}
	completion, err := g.completer.Complete(ctx, segments)
	if err != nil {
		return domain.Completion{}, fmt.Errorf("%w: %w", errors.ErrProviderError, err)
	}
	if completion.Metadata == nil {
		completion.Metadata = map[string]any{}
	}
	g.log.Debug("Completion received", "tokens", completion.TokenCount, "length", len(completion.Text))
	return completion, nil
}

func (g *Gateway) Embed(ctx context.Context, text string) ([]float32, error) {
	if g.embedder == nil {
		return nil, errors.ErrProviderUnavailable
	}
	if g.cache != nil {
		if vector, ok := g.cache.Get(text); ok {
			return slices.Clone(vector), nil
		}
	}
	vector, err := g.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrProviderError, err)
	}
	if len(vector) == 0 {
		return nil, fmt.Errorf("%w: %w", errors.ErrProviderError, errors.ErrEmptyEmbedding)
	}
	if g.cache != nil {
		g.cache.Set(text, slices.Clone(vector), 1)
	}
	return vector, nil
}

// Close releases the embedding cache.
func (g *Gateway) Close() {
	if g.cache != nil {
		g.cache.Close()
	}
}

// Wait blocks until pending cache writes are visible.
func (g *Gateway) Wait() {
	if g.cache != nil {
		g.cache.Wait()
	}
}
