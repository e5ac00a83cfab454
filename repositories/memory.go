package repositories

import (
	"chat-room/domain"
	"chat-room/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"
)

const (
	memoryCollection   = "memories"
	memoryCreatedAtKey = "created_at"
)

// MemoryRepository keeps long-term memories in a chromem-go collection
// and answers nearest-neighbour queries by cosine similarity.
type MemoryRepository struct {
	collection *chromem.Collection
	log        *slog.Logger
}

func NewMemoryRepository(db *chromem.DB, log *slog.Logger) (*MemoryRepository, error) {
	// Vectors are always computed upstream, the collection never embeds by itself
	collection, err := db.GetOrCreateCollection(memoryCollection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("open memory collection: %w", err)
	}
	return &MemoryRepository{collection: collection, log: log}, nil
}

func (m *MemoryRepository) InsertMemory(ctx context.Context, text string, vector []float32) error {
	if len(vector) == 0 {
		return errors.ErrEmptyEmbedding
	}
	doc := chromem.Document{
		ID:        uuid.NewString(),
		Metadata:  map[string]string{memoryCreatedAtKey: time.Now().UTC().Format(time.RFC3339Nano)},
		Embedding: vector,
		Content:   text,
	}
	return m.collection.AddDocument(ctx, doc)
}

// SearchMemory returns at most k memories, most similar first.
func (m *MemoryRepository) SearchMemory(ctx context.Context, vector []float32, k int) ([]domain.MemoryEntry, error) {
	if len(vector) == 0 {
		return nil, errors.ErrEmptyEmbedding
	}
	// chromem rejects a result count above the collection size
	n := min(k, m.collection.Count())
	if n <= 0 {
		return nil, nil
	}
	results, err := m.collection.QueryEmbedding(ctx, vector, n, nil, nil)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.MemoryEntry, 0, len(results))
	for _, result := range results {
		createdAt, err := time.Parse(time.RFC3339Nano, result.Metadata[memoryCreatedAtKey])
		if err != nil {
			m.log.Debug("Memory without creation time", "id", result.ID)
		}
		entries = append(entries, domain.MemoryEntry{
			ID:         result.ID,
			Content:    result.Content,
			Embedding:  result.Embedding,
			CreatedAt:  createdAt,
			Similarity: result.Similarity,
		})
	}
	return entries, nil
}

func (m *MemoryRepository) Count() int {
	return m.collection.Count()
}
