package repositories

import (
	"chat-room/domain"
	"chat-room/errors"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	factPrefix      = "fact:"
	factIndexPrefix = "factidx:"
)

// FactRepository persists user facts in BadgerDB.
// A fact lives under "fact:{id}", "factidx:{username}:{type}" points to it
// so there is at most one fact per user and type.
type FactRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewFactRepository(db *badger.DB, log *slog.Logger) *FactRepository {
	return &FactRepository{db: db, log: log}
}

type diskFact struct {
	ID              string         `cbor:"id"`
	Username        string         `cbor:"username"`
	RequestID       string         `cbor:"request_id,omitempty"`
	Type            string         `cbor:"type"`
	Value           string         `cbor:"value"`
	NormalizedValue *string        `cbor:"normalized_value,omitempty"`
	Confidence      float64        `cbor:"confidence"`
	Active          bool           `cbor:"active"`
	Metadata        map[string]any `cbor:"metadata,omitempty"`
	CreatedAt       int64          `cbor:"created_at"`
	UpdatedAt       int64          `cbor:"updated_at"`
}

// UpsertFact creates the fact of (author, type) or overwrites it, reactivating a deleted one.
func (f *FactRepository) UpsertFact(ctx context.Context, author, requestID string, candidate domain.Candidate) (domain.Fact, error) {
	if err := ctx.Err(); err != nil {
		return domain.Fact{}, err
	}
	var saved domain.Fact
	err := f.db.Update(func(txn *badger.Txn) error {
		now := time.Now().UTC()
		indexKey := factIndexKey(author, candidate.Type)

		fact := domain.Fact{
			ID:        uuid.NewString(),
			Username:  author,
			Type:      candidate.Type,
			CreatedAt: now,
		}
		item, err := txn.Get(indexKey)
		switch {
		case err == nil:
			id, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if fact, err = getFact(txn, string(id)); err != nil {
				return err
			}
		case errors.Is(err, badger.ErrKeyNotFound):
			if err := txn.Set(indexKey, []byte(fact.ID)); err != nil {
				return err
			}
		default:
			return err
		}

		fact.RequestID = requestID
		fact.Value = candidate.Value
		fact.NormalizedValue = candidate.Normalized
		fact.Confidence = candidate.Confidence
		fact.Active = true
		fact.Metadata = map[string]any{"source": candidate.Source}
		fact.UpdatedAt = now

		saved = fact
		return putFact(txn, fact)
	})
	return saved, err
}

// GetActiveFacts returns the active facts of author ordered by type.
func (f *FactRepository) GetActiveFacts(ctx context.Context, author string) ([]domain.Fact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var facts []domain.Fact
	err := f.db.View(func(txn *badger.Txn) error {
		prefix := []byte(factIndexPrefix + url.QueryEscape(author) + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			fact, err := getFact(txn, string(id))
			if err != nil {
				return err
			}
			if fact.Active {
				facts = append(facts, fact)
			}
		}
		return nil
	})
	return facts, err
}

func (f *FactRepository) GetFact(ctx context.Context, id string) (domain.Fact, error) {
	if err := ctx.Err(); err != nil {
		return domain.Fact{}, err
	}
	var fact domain.Fact
	err := f.db.View(func(txn *badger.Txn) error {
		var err error
		fact, err = getFact(txn, id)
		return err
	})
	return fact, err
}

// DeleteFact is a soft delete, the fact stays readable by id.
func (f *FactRepository) DeleteFact(ctx context.Context, id string) error {
	_, err := f.UpdateFact(ctx, id, domain.FactPatch{Active: new(bool)})
	return err
}

func (f *FactRepository) UpdateFact(ctx context.Context, id string, patch domain.FactPatch) (domain.Fact, error) {
	if err := ctx.Err(); err != nil {
		return domain.Fact{}, err
	}
	var updated domain.Fact
	err := f.db.Update(func(txn *badger.Txn) error {
		fact, err := getFact(txn, id)
		if err != nil {
			return err
		}
		updated = patch.Apply(fact)
		updated.UpdatedAt = time.Now().UTC()
		return putFact(txn, updated)
	})
	return updated, err
}

func getFact(txn *badger.Txn, id string) (domain.Fact, error) {
	item, err := txn.Get([]byte(factPrefix + id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.Fact{}, fmt.Errorf("%w: %s", errors.ErrFactNotFound, id)
		}
		return domain.Fact{}, err
	}
	var disk diskFact
	if err = item.Value(func(value []byte) error { return unmarshal(value, &disk) }); err != nil {
		return domain.Fact{}, err
	}
	return toFact(disk), nil
}

func putFact(txn *badger.Txn, fact domain.Fact) error {
	data, err := marshal(fromFact(fact))
	if err != nil {
		return fmt.Errorf("marshal fact: %w", err)
	}
	return txn.Set([]byte(factPrefix+fact.ID), data)
}

// factIndexKey escapes the username so that a ':' in a name cannot collide with another user.
func factIndexKey(author string, factType domain.FactType) []byte {
	return []byte(factIndexPrefix + url.QueryEscape(author) + ":" + string(factType))
}

func fromFact(fact domain.Fact) diskFact {
	return diskFact{
		ID:              fact.ID,
		Username:        fact.Username,
		RequestID:       fact.RequestID,
		Type:            string(fact.Type),
		Value:           fact.Value,
		NormalizedValue: fact.NormalizedValue,
		Confidence:      fact.Confidence,
		Active:          fact.Active,
		Metadata:        fact.Metadata,
		CreatedAt:       fact.CreatedAt.UnixNano(),
		UpdatedAt:       fact.UpdatedAt.UnixNano(),
	}
}

func toFact(disk diskFact) domain.Fact {
	return domain.Fact{
		ID:              disk.ID,
		Username:        disk.Username,
		RequestID:       disk.RequestID,
		Type:            domain.FactType(disk.Type),
		Value:           disk.Value,
		NormalizedValue: disk.NormalizedValue,
		Confidence:      disk.Confidence,
		Active:          disk.Active,
		Metadata:        disk.Metadata,
		CreatedAt:       time.Unix(0, disk.CreatedAt).UTC(),
		UpdatedAt:       time.Unix(0, disk.UpdatedAt).UTC(),
	}
}
