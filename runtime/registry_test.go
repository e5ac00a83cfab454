package runtime

import (
	"chat-room/domain/event"
	"chat-room/errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeConnection records every event sent to it.
type fakeConnection struct {
	id     string
	mu     sync.Mutex
	events []event.Outbound
}

func newFakeConnection() *fakeConnection {
	return &fakeConnection{id: uuid.NewString()}
}

func (c *fakeConnection) ID() string { return c.id }

func (c *fakeConnection) Send(e event.Outbound) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
	return nil
}

func (c *fakeConnection) Events() []event.Outbound {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]event.Outbound(nil), c.events...)
}

func TestRegistry_Register_And_Snapshot(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice, bob := newFakeConnection(), newFakeConnection()

	// Given nobody is connected
	req.Zero(registry.Count())
	req.Empty(registry.All())

	// When two connections register
	req.NoError(registry.Register(alice))
	req.NoError(registry.Register(bob))

	// Then both are active in registration order
	req.Equal(2, registry.Count())
	snapshot := registry.All()
	req.Len(snapshot, 2)
	req.Equal(alice.ID(), snapshot[0].ID())
	req.Equal(bob.ID(), snapshot[1].ID())

	// And a snapshot is not affected by later mutations
	registry.Unregister(alice)
	req.Len(snapshot, 2)
	req.Len(registry.All(), 1)
}

func TestRegistry_Register_Twice(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn := newFakeConnection()

	req.NoError(registry.Register(conn))
	err := registry.Register(conn)

	req.ErrorIs(err, errors.ErrAlreadyRegistered)
	req.Equal(1, registry.Count())
}

func TestRegistry_Names(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn := newFakeConnection()
	req.NoError(registry.Register(conn))

	// Given a connection without name
	_, ok := registry.NameOf(conn)
	req.False(ok)

	// When a name is declared then overwritten
	registry.SetName(conn, "alice")
	registry.SetName(conn, "alicia")

	// Then the last one wins
	name, ok := registry.NameOf(conn)
	req.True(ok)
	req.Equal("alicia", name)

	// When the connection leaves the name binding goes too
	registry.Unregister(conn)
	_, ok = registry.NameOf(conn)
	req.False(ok)
}

func TestRegistry_SetName_Unknown_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn := newFakeConnection()

	registry.SetName(conn, "ghost")

	_, ok := registry.NameOf(conn)
	req.False(ok)
	req.Zero(registry.Count())
}

func TestRegistry_Unregister_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn := newFakeConnection()
	req.NoError(registry.Register(conn))

	registry.Unregister(conn)
	registry.Unregister(conn)

	req.Zero(registry.Count())
}

func TestRegistry_Concurrent_Mutations(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := newFakeConnection()
			_ = registry.Register(conn)
			registry.SetName(conn, conn.ID())
			_ = registry.All()
			registry.Unregister(conn)
		}()
	}
	wg.Wait()

	req.Zero(registry.Count())
}
