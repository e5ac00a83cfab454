package repositories

import (
	"chat-room/domain"
	"chat-room/errors"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	requestPrefix = "req:"
	sessionPrefix = "session:"
)

// RequestRepository persists Message Records in BadgerDB.
// A record lives under "req:{id}" and is indexed by
// "session:{session_id}:{timestamp_padded}:{id}" for chronological listing.
type RequestRepository struct {
	db  *badger.DB
	log *slog.Logger

	mu   sync.Mutex
	last time.Time
}

func NewRequestRepository(db *badger.DB, log *slog.Logger) *RequestRepository {
	return &RequestRepository{db: db, log: log}
}

type diskRecord struct {
	ID         string         `cbor:"id"`
	Prompt     string         `cbor:"prompt"`
	Response   *string        `cbor:"response,omitempty"`
	TokensUsed *int           `cbor:"tokens_used,omitempty"`
	Author     string         `cbor:"author"`
	SessionID  string         `cbor:"session_id"`
	Metadata   map[string]any `cbor:"metadata,omitempty"`
	CreatedAt  int64          `cbor:"created_at"`
	UpdatedAt  int64          `cbor:"updated_at"`
}

// CreateRequest stores a prompt-only record and returns it with its new id.
func (r *RequestRepository) CreateRequest(ctx context.Context, prompt, sessionID, author string, metadata map[string]any) (domain.MessageRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.MessageRecord{}, err
	}
	at := r.now()
	record := domain.MessageRecord{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		Author:    author,
		SessionID: sessionID,
		Metadata:  maps.Clone(metadata),
		CreatedAt: at,
		UpdatedAt: at,
	}
	data, err := marshal(fromRecord(record))
	if err != nil {
		return domain.MessageRecord{}, fmt.Errorf("marshal request: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(requestKey(record.ID), data); err != nil {
			return err
		}
		return txn.Set(sessionKey(sessionID, at, record.ID), []byte(record.ID))
	})
	if err != nil {
		return domain.MessageRecord{}, err
	}
	return record, nil
}

// UpdateRequest attaches a generation result, metadata keys are merged into the existing ones.
func (r *RequestRepository) UpdateRequest(ctx context.Context, id, response string, tokenCount int, metadata map[string]any) (domain.MessageRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.MessageRecord{}, err
	}
	var updated domain.MessageRecord
	err := r.db.Update(func(txn *badger.Txn) error {
		record, err := getRecord(txn, id)
		if err != nil {
			return err
		}
		record.Response = lo.ToPtr(response)
		record.TokensUsed = lo.ToPtr(tokenCount)
		if record.Metadata == nil {
			record.Metadata = make(map[string]any, len(metadata))
		}
		maps.Copy(record.Metadata, metadata)
		record.UpdatedAt = r.now()

		data, err := marshal(fromRecord(record))
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		updated = record
		return txn.Set(requestKey(id), data)
	})
	return updated, err
}

func (r *RequestRepository) GetRequest(ctx context.Context, id string) (domain.MessageRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.MessageRecord{}, err
	}
	var record domain.MessageRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = getRecord(txn, id)
		return err
	})
	return record, err
}

// GetRequests returns the records of ids in the same order, unknown ids are skipped.
func (r *RequestRepository) GetRequests(ctx context.Context, ids []string) ([]domain.MessageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []domain.MessageRecord
	err := r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			record, err := getRecord(txn, id)
			if err != nil {
				if errors.Is(err, errors.ErrRequestNotFound) {
					continue
				}
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	return records, err
}

// ListSession returns the most recent records of a session, oldest first.
// A limit <= 0 returns the whole session.
func (r *RequestRepository) ListSession(ctx context.Context, sessionID string, limit int) ([]domain.MessageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []domain.MessageRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(sessionPrefix + sessionID + ":")
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Start after the newest possible timestamp and walk back in time
		seekKey := append(slices.Clone(prefix), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d records reached", limit))
				break
			}
			id, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			record, err := getRecord(txn, string(id))
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(records)
	return records, nil
}

// now never returns the same instant twice so that session keys keep arrival order.
func (r *RequestRepository) now() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	at := time.Now().UTC()
	if !at.After(r.last) {
		at = r.last.Add(time.Nanosecond)
	}
	r.last = at
	return at
}

func getRecord(txn *badger.Txn, id string) (domain.MessageRecord, error) {
	item, err := txn.Get(requestKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.MessageRecord{}, fmt.Errorf("%w: %s", errors.ErrRequestNotFound, id)
		}
		return domain.MessageRecord{}, err
	}
	var disk diskRecord
	err = item.Value(func(value []byte) error {
		return unmarshal(value, &disk)
	})
	if err != nil {
		return domain.MessageRecord{}, err
	}
	return toRecord(disk), nil
}

func requestKey(id string) []byte {
	return []byte(requestPrefix + id)
}

func sessionKey(sessionID string, at time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s", sessionPrefix, sessionID, at.UnixNano(), id))
}

func fromRecord(record domain.MessageRecord) diskRecord {
	return diskRecord{
		ID:         record.ID,
		Prompt:     record.Prompt,
		Response:   record.Response,
		TokensUsed: record.TokensUsed,
		Author:     record.Author,
		SessionID:  record.SessionID,
		Metadata:   record.Metadata,
		CreatedAt:  record.CreatedAt.UnixNano(),
		UpdatedAt:  record.UpdatedAt.UnixNano(),
	}
}

func toRecord(disk diskRecord) domain.MessageRecord {
	return domain.MessageRecord{
		ID:         disk.ID,
		Prompt:     disk.Prompt,
		Response:   disk.Response,
		TokensUsed: disk.TokensUsed,
		Author:     disk.Author,
		SessionID:  disk.SessionID,
		Metadata:   disk.Metadata,
		CreatedAt:  time.Unix(0, disk.CreatedAt).UTC(),
		UpdatedAt:  time.Unix(0, disk.UpdatedAt).UTC(),
	}
}
