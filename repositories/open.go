package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/philippgille/chromem-go"
)

type Paths struct {
	Badger   string
	Bluge    string
	Memories string // empty keeps memories in process memory only
}

// Resources holds the opened databases behind a Store.
type Resources struct {
	DB    *badger.DB
	Store *Store
	index *MessageIndex
	log   *slog.Logger
}

// Open opens every database of the store. On error nothing stays open.
func Open(paths Paths, log *slog.Logger) (*Resources, error) {
	db, err := badger.Open(badgerOptions(paths.Badger, log))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}

	vectors := chromem.NewDB()
	if paths.Memories != "" {
		vectors, err = chromem.NewPersistentDB(paths.Memories, false)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("memory store opening failed: %w", err)
		}
	}
	memories, err := NewMemoryRepository(vectors, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	index, err := NewMessageIndex(bluge.DefaultConfig(paths.Bluge), log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := NewStore(NewRequestRepository(db, log), NewFactRepository(db, log), memories, index, log)
	return &Resources{DB: db, Store: store, index: index, log: log}, nil
}

func (r *Resources) Close() {
	r.log.Info("Closing Bluge...")
	_ = r.index.Close()
	r.log.Info("Closing BadgerDB...")
	_ = r.DB.Close()
}

func badgerOptions(path string, log *slog.Logger) badger.Options {
	options := badger.DefaultOptions(path)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.INFO)
}
