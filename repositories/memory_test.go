package repositories

import (
	"chat-room/errors"
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/philippgille/chromem-go"
	"github.com/stretchr/testify/require"
)

func setupMemories(t *testing.T) *MemoryRepository {
	repository, err := NewMemoryRepository(chromem.NewDB(), logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	return repository
}

func TestMemoryRepository_Search_Most_Similar_First(t *testing.T) {
	req := require.New(t)
	repository := setupMemories(t)
	ctx := context.Background()

	// Given three memories pointing in different directions
	req.NoError(repository.InsertMemory(ctx, "cats", []float32{1, 0, 0}))
	req.NoError(repository.InsertMemory(ctx, "dogs", []float32{0, 1, 0}))
	req.NoError(repository.InsertMemory(ctx, "kittens", []float32{0.9, 0.1, 0}))

	// When searching close to the first axis
	entries, err := repository.SearchMemory(ctx, []float32{1, 0, 0}, 2)
	req.NoError(err)

	// Then the two closest come back ordered by similarity
	req.Len(entries, 2)
	req.Equal("cats", entries[0].Content)
	req.Equal("kittens", entries[1].Content)
	req.GreaterOrEqual(entries[0].Similarity, entries[1].Similarity)
	req.False(entries[0].CreatedAt.IsZero())
}

func TestMemoryRepository_K_Larger_Than_Collection(t *testing.T) {
	req := require.New(t)
	repository := setupMemories(t)
	ctx := context.Background()

	req.NoError(repository.InsertMemory(ctx, "only one", []float32{0, 0, 1}))

	entries, err := repository.SearchMemory(ctx, []float32{0, 0, 1}, 5)
	req.NoError(err)
	req.Len(entries, 1)
	req.Equal(1, repository.Count())
}

func TestMemoryRepository_Empty_Collection(t *testing.T) {
	req := require.New(t)
	repository := setupMemories(t)

	entries, err := repository.SearchMemory(context.Background(), []float32{1, 0}, 3)

	req.NoError(err)
	req.Empty(entries)
}

func TestMemoryRepository_Rejects_Empty_Vector(t *testing.T) {
	req := require.New(t)
	repository := setupMemories(t)
	ctx := context.Background()

	req.ErrorIs(repository.InsertMemory(ctx, "nothing", nil), errors.ErrEmptyEmbedding)
	_, err := repository.SearchMemory(ctx, nil, 3)
	req.ErrorIs(err, errors.ErrEmptyEmbedding)
	req.Zero(repository.Count())
}
