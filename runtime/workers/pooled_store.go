package workers

import (
	"chat-room/contract"
	"chat-room/domain"
	"context"
)

// PooledStoreBackend is everything the HTTP API and the engine need from persistence.
type PooledStoreBackend interface {
	contract.Store
	contract.FactAdmin
	contract.MessageSearcher
}

var (
	_ contract.Store           = (*PooledStore)(nil)
	_ contract.FactAdmin       = (*PooledStore)(nil)
	_ contract.MessageSearcher = (*PooledStore)(nil)
)

// PooledStore routes every persistence call through the StorePool.
type PooledStore struct {
	pool    *StorePool
	backend PooledStoreBackend
}

func NewPooledStore(pool *StorePool, backend PooledStoreBackend) *PooledStore {
	return &PooledStore{pool: pool, backend: backend}
}

func (s *PooledStore) CreateRequest(ctx context.Context, prompt, sessionID, author string, metadata map[string]any) (string, error) {
	return Do(ctx, s.pool, func(ctx context.Context) (string, error) {
		return s.backend.CreateRequest(ctx, prompt, sessionID, author, metadata)
	})
}

func (s *PooledStore) UpdateRequest(ctx context.Context, id, response string, tokenCount int, metadata map[string]any) error {
	return s.pool.Submit(ctx, func(ctx context.Context) error {
		return s.backend.UpdateRequest(ctx, id, response, tokenCount, metadata)
	})
}

func (s *PooledStore) ListSession(ctx context.Context, sessionID string, limit int) ([]domain.MessageRecord, error) {
	return Do(ctx, s.pool, func(ctx context.Context) ([]domain.MessageRecord, error) {
		return s.backend.ListSession(ctx, sessionID, limit)
	})
}

func (s *PooledStore) InsertMemory(ctx context.Context, text string, vector []float32) error {
	return s.pool.Submit(ctx, func(ctx context.Context) error {
		return s.backend.InsertMemory(ctx, text, vector)
	})
}

func (s *PooledStore) SearchMemory(ctx context.Context, vector []float32, k int) ([]domain.MemoryEntry, error) {
	return Do(ctx, s.pool, func(ctx context.Context) ([]domain.MemoryEntry, error) {
		return s.backend.SearchMemory(ctx, vector, k)
	})
}

func (s *PooledStore) GetActiveFacts(ctx context.Context, author string) ([]domain.Fact, error) {
	return Do(ctx, s.pool, func(ctx context.Context) ([]domain.Fact, error) {
		return s.backend.GetActiveFacts(ctx, author)
	})
}

func (s *PooledStore) UpsertFact(ctx context.Context, author, requestID string, candidate domain.Candidate) (domain.Fact, error) {
	return Do(ctx, s.pool, func(ctx context.Context) (domain.Fact, error) {
		return s.backend.UpsertFact(ctx, author, requestID, candidate)
	})
}

func (s *PooledStore) GetFact(ctx context.Context, id string) (domain.Fact, error) {
	return Do(ctx, s.pool, func(ctx context.Context) (domain.Fact, error) {
		return s.backend.GetFact(ctx, id)
	})
}

func (s *PooledStore) DeleteFact(ctx context.Context, id string) error {
	return s.pool.Submit(ctx, func(ctx context.Context) error {
		return s.backend.DeleteFact(ctx, id)
	})
}

func (s *PooledStore) UpdateFact(ctx context.Context, id string, patch domain.FactPatch) (domain.Fact, error) {
	return Do(ctx, s.pool, func(ctx context.Context) (domain.Fact, error) {
		return s.backend.UpdateFact(ctx, id, patch)
	})
}

func (s *PooledStore) SearchMessages(ctx context.Context, query string, limit int) ([]domain.MessageRecord, error) {
	return Do(ctx, s.pool, func(ctx context.Context) ([]domain.MessageRecord, error) {
		return s.backend.SearchMessages(ctx, query, limit)
	})
}
