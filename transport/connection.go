package transport

import (
	"chat-room/contract"
	"chat-room/domain/event"
	"chat-room/errors"
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	_ contract.Connection = (*Connection)(nil)
	_ contract.Deliverer  = (*Connection)(nil)
)

// Connection is the engine side of one websocket client.
// Events go through a buffered outbound queue drained by a single writer goroutine.
type Connection struct {
	id     string
	ws     *websocket.Conn
	out    chan event.Outbound
	closed chan struct{}
	once   sync.Once
	log    *slog.Logger
}

func newConnection(ws *websocket.Conn, bufferSize int, log *slog.Logger) *Connection {
	id := uuid.NewString()
	return &Connection{
		id:     id,
		ws:     ws,
		out:    make(chan event.Outbound, bufferSize),
		closed: make(chan struct{}),
		log:    log.With("connection_id", id),
	}
}

func (c *Connection) ID() string {
	return c.id
}

// Send never blocks. A full queue drops the event, a closed connection reports ErrConnectionLost.
func (c *Connection) Send(e event.Outbound) error {
	select {
	case <-c.closed:
		return errors.ErrConnectionLost
	default:
	}
	select {
	case c.out <- e:
		return nil
	case <-c.closed:
		return errors.ErrConnectionLost
	default:
		c.log.Warn("Outbound buffer full, event dropped", "type", e.Kind())
		return nil
	}
}

// Deliver waits for room in the outbound queue. It is used for history replay,
// where dropping events would leave holes in the conversation.
func (c *Connection) Deliver(ctx context.Context, e event.Outbound) error {
	select {
	case <-c.closed:
		return errors.ErrConnectionLost
	default:
	}
	select {
	case c.out <- e:
		return nil
	case <-c.closed:
		return errors.ErrConnectionLost
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close is safe to call from the reader and the writer.
func (c *Connection) close() {
	c.once.Do(func() {
		close(c.closed)
		if c.ws != nil {
			_ = c.ws.Close()
		}
	})
}

func (c *Connection) Done() <-chan struct{} {
	return c.closed
}
