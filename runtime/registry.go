package runtime

import (
	"chat-room/contract"
	"chat-room/errors"
	"slices"
	"sync"
)

var _ contract.IRegistry = (*Registry)(nil)

// Registry owns the active connections of the room and their display names.
// Every method is one atomic step under the mutex.
type Registry struct {
	mu          sync.RWMutex
	connections map[string]contract.Connection // connection id -> connection
	names       map[string]string              // connection id -> display name
	order       []string                       // registration order
}

func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[string]contract.Connection),
		names:       make(map[string]string),
	}
}

// Register adds conn to the active set.
func (r *Registry) Register(conn contract.Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.connections[conn.ID()]; ok {
		return errors.ErrAlreadyRegistered
	}
	r.connections[conn.ID()] = conn
	r.order = append(r.order, conn.ID())
	return nil
}

// Unregister removes conn and its name binding, unknown connections are ignored.
func (r *Registry) Unregister(conn contract.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := conn.ID()
	if _, ok := r.connections[id]; !ok {
		return
	}
	delete(r.connections, id)
	delete(r.names, id)
	r.order = slices.DeleteFunc(r.order, func(other string) bool { return other == id })
}

// SetName binds or overwrites the display name of a registered connection.
func (r *Registry) SetName(conn contract.Connection, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.connections[conn.ID()]; !ok {
		return
	}
	r.names[conn.ID()] = name
}

func (r *Registry) NameOf(conn contract.Connection) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.names[conn.ID()]
	return name, ok
}

// All returns a snapshot of the active connections in registration order.
// Later mutations do not affect a snapshot being broadcast to.
func (r *Registry) All() []contract.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]contract.Connection, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, r.connections[id])
	}
	return snapshot
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}
