package repositories

import (
	"chat-room/contract"
	"chat-room/domain"
	"context"
	"log/slog"
)

var (
	_ contract.Store           = (*Store)(nil)
	_ contract.FactAdmin       = (*Store)(nil)
	_ contract.MessageSearcher = (*Store)(nil)
)

// Store is the persistence backend of the room: records and facts in Badger,
// memories in chromem-go, and a bluge index over records.
type Store struct {
	requests *RequestRepository
	facts    *FactRepository
	memories *MemoryRepository
	index    *MessageIndex
	log      *slog.Logger
}

func NewStore(requests *RequestRepository, facts *FactRepository, memories *MemoryRepository, index *MessageIndex, log *slog.Logger) *Store {
	return &Store{requests: requests, facts: facts, memories: memories, index: index, log: log}
}

func (s *Store) CreateRequest(ctx context.Context, prompt, sessionID, author string, metadata map[string]any) (string, error) {
	record, err := s.requests.CreateRequest(ctx, prompt, sessionID, author, metadata)
	if err != nil {
		return "", err
	}
	s.reindex(record)
	return record.ID, nil
}

func (s *Store) UpdateRequest(ctx context.Context, id, response string, tokenCount int, metadata map[string]any) error {
	record, err := s.requests.UpdateRequest(ctx, id, response, tokenCount, metadata)
	if err != nil {
		return err
	}
	s.reindex(record)
	return nil
}

func (s *Store) ListSession(ctx context.Context, sessionID string, limit int) ([]domain.MessageRecord, error) {
	return s.requests.ListSession(ctx, sessionID, limit)
}

func (s *Store) InsertMemory(ctx context.Context, text string, vector []float32) error {
	return s.memories.InsertMemory(ctx, text, vector)
}

func (s *Store) SearchMemory(ctx context.Context, vector []float32, k int) ([]domain.MemoryEntry, error) {
	return s.memories.SearchMemory(ctx, vector, k)
}

func (s *Store) GetActiveFacts(ctx context.Context, author string) ([]domain.Fact, error) {
	return s.facts.GetActiveFacts(ctx, author)
}

func (s *Store) UpsertFact(ctx context.Context, author, requestID string, candidate domain.Candidate) (domain.Fact, error) {
	return s.facts.UpsertFact(ctx, author, requestID, candidate)
}

func (s *Store) GetFact(ctx context.Context, id string) (domain.Fact, error) {
	return s.facts.GetFact(ctx, id)
}

func (s *Store) DeleteFact(ctx context.Context, id string) error {
	return s.facts.DeleteFact(ctx, id)
}

func (s *Store) UpdateFact(ctx context.Context, id string, patch domain.FactPatch) (domain.Fact, error) {
	return s.facts.UpdateFact(ctx, id, patch)
}

// SearchMessages runs a full-text query and loads the matching records, best match first.
func (s *Store) SearchMessages(ctx context.Context, query string, limit int) ([]domain.MessageRecord, error) {
	ids, err := s.index.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return s.requests.GetRequests(ctx, ids)
}

// reindex never fails the write, the index can be rebuilt from Badger.
func (s *Store) reindex(record domain.MessageRecord) {
	if err := s.index.Index(record); err != nil {
		s.log.Warn("Failed to index message", "id", record.ID, "error", err)
	}
}
