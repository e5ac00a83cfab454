package transport

import (
	"chat-room/contract"
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
)

type WebsocketConfig struct {
	InboundBufferSize  int
	OutboundBufferSize int
	WriteTimeout       time.Duration
	PingInterval       time.Duration
	MaxMessageSize     int64
	AllowedOrigins     []string
}

// WebsocketServer upgrades /ws requests and runs three goroutines per client:
// the reader feeding a bounded inbound queue, the processor handing payloads to the
// engine in arrival order, and the writer draining the outbound queue.
type WebsocketServer struct {
	ctx      context.Context
	log      *slog.Logger
	engine   contract.RoomEngine
	config   WebsocketConfig
	upgrader websocket.Upgrader
}

// NewWebsocketServer takes the server lifetime context: payloads are processed with it,
// so a client leaving does not cancel work already queued.
func NewWebsocketServer(ctx context.Context, log *slog.Logger, engine contract.RoomEngine, config WebsocketConfig) *WebsocketServer {
	if config.InboundBufferSize <= 0 {
		config.InboundBufferSize = 16
	}
	if config.OutboundBufferSize <= 0 {
		config.OutboundBufferSize = 64
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 10 * time.Second
	}
	s := &WebsocketServer{ctx: ctx, log: log, engine: engine, config: config}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *WebsocketServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if len(s.config.AllowedOrigins) == 0 || origin == "" {
		return true
	}
	return slices.Contains(s.config.AllowedOrigins, origin)
}

func (s *WebsocketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader already answered the client
		s.log.Warn("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	if s.config.MaxMessageSize > 0 {
		ws.SetReadLimit(s.config.MaxMessageSize)
	}

	conn := newConnection(ws, s.config.OutboundBufferSize, s.log)
	// The writer drains the queue while Connect replays the history
	go s.write(conn)
	if err := s.engine.Connect(s.ctx, conn); err != nil {
		s.log.Error("Connection rejected", "connection_id", conn.ID(), "error", err)
		conn.close()
		return
	}
	s.log.Info("Client connected", "connection_id", conn.ID(), "remote", r.RemoteAddr)

	inbound := make(chan []byte, s.config.InboundBufferSize)
	go s.process(conn, inbound)
	s.read(conn, inbound)
}

// read returns once the client is gone. It only closes the inbound queue,
// the processor leaves the room after the queued payloads.
func (s *WebsocketServer) read(conn *Connection, inbound chan<- []byte) {
	defer func() {
		close(inbound)
		conn.close()
		s.log.Info("Client disconnected", "connection_id", conn.ID())
	}()

	if s.config.PingInterval > 0 {
		pongWait := 2 * s.config.PingInterval
		_ = conn.ws.SetReadDeadline(time.Now().Add(pongWait))
		conn.ws.SetPongHandler(func(string) error {
			return conn.ws.SetReadDeadline(time.Now().Add(pongWait))
		})
	}

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				conn.log.Warn("Unexpected close", "error", err)
			}
			return
		}
		select {
		case inbound <- data:
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *WebsocketServer) process(conn *Connection, inbound <-chan []byte) {
	for raw := range inbound {
		s.engine.Handle(s.ctx, conn, raw)
	}
	s.engine.Disconnect(conn)
}

func (s *WebsocketServer) write(conn *Connection) {
	var ping <-chan time.Time
	if s.config.PingInterval > 0 {
		ticker := time.NewTicker(s.config.PingInterval)
		defer ticker.Stop()
		ping = ticker.C
	}

	for {
		select {
		case e := <-conn.out:
			_ = conn.ws.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := conn.ws.WriteJSON(e); err != nil {
				conn.log.Warn("Failed to push event", "type", e.Kind(), "error", err)
				conn.close()
				return
			}
		case <-ping:
			deadline := time.Now().Add(s.config.WriteTimeout)
			if err := conn.ws.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				conn.close()
				return
			}
		case <-s.ctx.Done():
			deadline := time.Now().Add(s.config.WriteTimeout)
			_ = conn.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"), deadline)
			conn.close()
			return
		case <-conn.closed:
			return
		}
	}
}
