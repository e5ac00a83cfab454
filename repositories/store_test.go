package repositories

import (
	"chat-room/domain"
	"chat-room/errors"
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/philippgille/chromem-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, cleanup := SetupTestDB(t)
	t.Cleanup(cleanup)

	memories, err := NewMemoryRepository(chromem.NewDB(), log)
	require.NoError(t, err)
	index, err := NewMessageIndex(bluge.InMemoryOnlyConfig(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	return NewStore(NewRequestRepository(db, log), NewFactRepository(db, log), memories, index, log)
}

func TestStore_Search_Finds_Prompts_And_Responses(t *testing.T) {
	req := require.New(t)
	store := setupStore(t)
	ctx := context.Background()

	// Given a question answered by a persona and an unrelated message
	id, err := store.CreateRequest(ctx, "@Bot what is the capital of France", "room", "alice", nil)
	req.NoError(err)
	req.NoError(store.UpdateRequest(ctx, id, "Paris is the capital", 7, map[string]any{"persona": "Bot"}))
	_, err = store.CreateRequest(ctx, "see you tomorrow", "room", "bob", nil)
	req.NoError(err)

	// When searching a word from the response
	records, err := store.SearchMessages(ctx, "paris", 10)
	req.NoError(err)

	// Then the answered record is returned
	req.Len(records, 1)
	req.Equal(id, records[0].ID)
	req.Equal("Bot", records[0].Persona())

	// And a prompt word finds it too
	records, err = store.SearchMessages(ctx, "france", 10)
	req.NoError(err)
	req.Len(records, 1)

	none, err := store.SearchMessages(ctx, "unicorn", 10)
	req.NoError(err)
	req.Empty(none)
}

func TestStore_Delegates_Facts_And_Memories(t *testing.T) {
	req := require.New(t)
	store := setupStore(t)
	ctx := context.Background()

	fact, err := store.UpsertFact(ctx, "alice", "r1", domain.Candidate{
		Type:       domain.FactBirthday,
		Value:      "July 29, 1993",
		Normalized: lo.ToPtr("1993-07-29"),
		Confidence: 0.95,
		Source:     "regex",
	})
	req.NoError(err)
	facts, err := store.GetActiveFacts(ctx, "alice")
	req.NoError(err)
	req.Len(facts, 1)
	req.NoError(store.DeleteFact(ctx, fact.ID))
	_, err = store.GetFact(ctx, "missing")
	req.ErrorIs(err, errors.ErrFactNotFound)

	req.NoError(store.InsertMemory(ctx, "remember me", []float32{0.2, 0.8}))
	entries, err := store.SearchMemory(ctx, []float32{0.2, 0.8}, 3)
	req.NoError(err)
	req.Len(entries, 1)
	req.Equal("remember me", entries[0].Content)

	history, err := store.ListSession(ctx, "room", 10)
	req.NoError(err)
	req.Empty(history)
}

func TestUnavailable_Fails_Every_Call(t *testing.T) {
	req := require.New(t)
	store := Unavailable{}
	ctx := context.Background()

	_, err := store.CreateRequest(ctx, "hi", "room", "alice", nil)
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	req.ErrorIs(store.UpdateRequest(ctx, "id", "x", 1, nil), errors.ErrStoreUnavailable)
	_, err = store.ListSession(ctx, "room", 10)
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	req.ErrorIs(store.InsertMemory(ctx, "x", []float32{1}), errors.ErrStoreUnavailable)
	_, err = store.SearchMemory(ctx, []float32{1}, 1)
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	_, err = store.GetActiveFacts(ctx, "alice")
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	_, err = store.UpsertFact(ctx, "alice", "id", domain.Candidate{})
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	_, err = store.SearchMessages(ctx, "x", 1)
	req.ErrorIs(err, errors.ErrStoreUnavailable)
}

func TestDecodeEntry(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	requests := NewRequestRepository(db, log)
	facts := NewFactRepository(db, log)
	ctx := context.Background()

	record, err := requests.CreateRequest(ctx, "@Bot hi", "room", "alice", nil)
	req.NoError(err)
	_, err = requests.UpdateRequest(ctx, record.ID, "hello", 2, map[string]any{domain.MetadataPersona: "Bot"})
	req.NoError(err)
	fact, err := facts.UpsertFact(ctx, "alice", record.ID, domain.Candidate{Type: domain.FactName, Value: "Alice", Normalized: lo.ToPtr("Alice")})
	req.NoError(err)

	entries := map[string]Entry{}
	req.NoError(db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			if entry, ok := DecodeEntry(string(it.Item().Key()), value); ok {
				entries[entry.Key] = entry
			}
		}
		return nil
	}))

	answered := entries[requestPrefix+record.ID]
	req.Equal("ANSWERED", answered.Kind)
	req.Equal("alice", answered.Owner)
	req.Equal("@Bot hi => Bot: hello", answered.Detail)
	req.Equal("name: Alice (normalized: Alice)", entries[factPrefix+fact.ID].Detail)

	_, ok := DecodeEntry("unknown:key", nil)
	req.False(ok)
}
