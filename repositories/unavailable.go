package repositories

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/errors"
	"context"
)

var (
	_ contract.Store           = Unavailable{}
	_ contract.FactAdmin       = Unavailable{}
	_ contract.MessageSearcher = Unavailable{}
)

// Unavailable stands in for the store when no database is configured.
// Every call fails with ErrStoreUnavailable and the room keeps working without persistence.
type Unavailable struct{}

func (Unavailable) CreateRequest(context.Context, string, string, string, map[string]any) (string, error) {
	return "", errors.ErrStoreUnavailable
}

func (Unavailable) UpdateRequest(context.Context, string, string, int, map[string]any) error {
	return errors.ErrStoreUnavailable
}

func (Unavailable) ListSession(context.Context, string, int) ([]domain.MessageRecord, error) {
	return nil, errors.ErrStoreUnavailable
}

func (Unavailable) InsertMemory(context.Context, string, []float32) error {
	return errors.ErrStoreUnavailable
}

func (Unavailable) SearchMemory(context.Context, []float32, int) ([]domain.MemoryEntry, error) {
	return nil, errors.ErrStoreUnavailable
}

func (Unavailable) GetActiveFacts(context.Context, string) ([]domain.Fact, error) {
	return nil, errors.ErrStoreUnavailable
}

func (Unavailable) UpsertFact(context.Context, string, string, domain.Candidate) (domain.Fact, error) {
	return domain.Fact{}, errors.ErrStoreUnavailable
}

func (Unavailable) GetFact(context.Context, string) (domain.Fact, error) {
	return domain.Fact{}, errors.ErrStoreUnavailable
}

func (Unavailable) DeleteFact(context.Context, string) error {
	return errors.ErrStoreUnavailable
}

func (Unavailable) UpdateFact(context.Context, string, domain.FactPatch) (domain.Fact, error) {
	return domain.Fact{}, errors.ErrStoreUnavailable
}

func (Unavailable) SearchMessages(context.Context, string, int) ([]domain.MessageRecord, error) {
	return nil, errors.ErrStoreUnavailable
}
