//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-room/domain"
	"chat-room/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Connection is one live client channel.
// Send must not block: a slow client loses events instead of stalling the room.
type Connection interface {
	ID() string
	Send(e event.Outbound) error
}

// Deliverer is implemented by connections that can wait for room in their outbound queue.
type Deliverer interface {
	Deliver(ctx context.Context, e event.Outbound) error
}

type IRegistry interface {
	Register(conn Connection) error
	Unregister(conn Connection)
	SetName(conn Connection, name string)
	NameOf(conn Connection) (string, bool)
	All() []Connection
	Count() int
}

// RoomEngine is what the transport drives, one call per connection event.
type RoomEngine interface {
	Connect(ctx context.Context, conn Connection) error
	Handle(ctx context.Context, conn Connection, raw []byte)
	Disconnect(conn Connection)
	ActiveConnections() int
}

// RoomMonitor counts room activity.
type RoomMonitor interface {
	IncrMessages()
	IncrReplies()
	IncrGenerationErrors()
	IncrStoreErrors()
}

type RequestStore interface {
	CreateRequest(ctx context.Context, prompt, sessionID, author string, metadata map[string]any) (string, error)
	UpdateRequest(ctx context.Context, id, response string, tokenCount int, metadata map[string]any) error
	ListSession(ctx context.Context, sessionID string, limit int) ([]domain.MessageRecord, error)
}

type MemoryStore interface {
	InsertMemory(ctx context.Context, text string, vector []float32) error
	SearchMemory(ctx context.Context, vector []float32, k int) ([]domain.MemoryEntry, error)
}

type FactStore interface {
	GetActiveFacts(ctx context.Context, author string) ([]domain.Fact, error)
	UpsertFact(ctx context.Context, author, requestID string, candidate domain.Candidate) (domain.Fact, error)
}

// Store is the persistence contract of the room engine.
type Store interface {
	RequestStore
	MemoryStore
	FactStore
}

// FactAdmin backs the facts HTTP API.
type FactAdmin interface {
	GetFact(ctx context.Context, id string) (domain.Fact, error)
	DeleteFact(ctx context.Context, id string) error
	UpdateFact(ctx context.Context, id string, patch domain.FactPatch) (domain.Fact, error)
	GetActiveFacts(ctx context.Context, author string) ([]domain.Fact, error)
}

type MessageSearcher interface {
	SearchMessages(ctx context.Context, query string, limit int) ([]domain.MessageRecord, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Completer is one text generation backend.
type Completer interface {
	Complete(ctx context.Context, segments []domain.Segment) (domain.Completion, error)
}

type Gateway interface {
	Embedder
	Completer
	CanComplete() bool
}

type ContextAssembler interface {
	Assemble(ctx context.Context, author, text string) (domain.PromptContext, error)
}
