package runtime

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/domain/event"
	"chat-room/errors"
	"chat-room/extraction"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// PublicRoomSession is the session every message record of the shared room belongs to.
const PublicRoomSession = "hackathon_public_room"

const (
	unknownAuthor          = "unknown"
	defaultReplayPersona   = "AI"
	providerNotConfigured  = "AI provider not configured"
	processingErrorMessage = "Error processing request: %v"
)

var _ contract.RoomEngine = (*Engine)(nil)

type EngineConfig struct {
	HistoryReplay bool
	HistoryLimit  int
}

// Engine applies the room protocol to the frames of every connection.
// Handle must be called sequentially for a given connection, connections run concurrently.
type Engine struct {
	log       *slog.Logger
	registry  contract.IRegistry
	store     contract.Store
	gateway   contract.Gateway
	assembler contract.ContextAssembler
	resolvers []PersonaResolver
	config    EngineConfig
	monitor   contract.RoomMonitor

	mu     sync.RWMutex
	states map[string]domain.ConnectionState
}

func NewEngine(
	log *slog.Logger,
	registry contract.IRegistry,
	store contract.Store,
	gateway contract.Gateway,
	assembler contract.ContextAssembler,
	config EngineConfig,
	resolvers []PersonaResolver,
) *Engine {
	if len(resolvers) == 0 {
		resolvers = DefaultPersonaResolvers()
	}
	return &Engine{
		log:       log,
		registry:  registry,
		store:     store,
		gateway:   gateway,
		assembler: assembler,
		resolvers: resolvers,
		config:    config,
		monitor:   noopMonitor{},
		states:    make(map[string]domain.ConnectionState),
	}
}

// WithMonitor reports room activity to monitor.
func (e *Engine) WithMonitor(monitor contract.RoomMonitor) *Engine {
	if monitor != nil {
		e.monitor = monitor
	}
	return e
}

// Connect registers conn and optionally replays the shared session to it.
func (e *Engine) Connect(ctx context.Context, conn contract.Connection) error {
	if err := e.registry.Register(conn); err != nil {
		return fmt.Errorf("register %s: %w", conn.ID(), err)
	}
	e.setState(conn, domain.StateConnected)
	e.log.Info("Connection opened", "connection", conn.ID(), "active", e.registry.Count())

	if e.config.HistoryReplay {
		e.replayHistory(ctx, conn)
	}
	return nil
}

// Disconnect unregisters conn right away, work already queued for it keeps running.
func (e *Engine) Disconnect(conn contract.Connection) {
	name, named := e.registry.NameOf(conn)
	e.registry.Unregister(conn)
	e.forgetState(conn)
	e.log.Info("Connection closed", "connection", conn.ID(), "username", name, "active", e.registry.Count())

	if named && name != "" {
		e.broadcast(event.UserLeft{Username: name}, nil)
	}
}

func (e *Engine) ActiveConnections() int {
	return e.registry.Count()
}

// State returns the lifecycle state of conn, unknown connections are closed.
func (e *Engine) State(conn contract.Connection) domain.ConnectionState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	state, ok := e.states[conn.ID()]
	if !ok {
		return domain.StateClosed
	}
	return state
}

// Handle classifies one raw frame and applies its side effects.
// Nothing escapes: failures are logged or turned into system events.
func (e *Engine) Handle(ctx context.Context, conn contract.Connection, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Recovered while handling payload", "connection", conn.ID(), "panic", r)
		}
	}()

	in := domain.ParseInbound(raw)
	if !in.Structured {
		e.log.Debug("Unstructured payload handled as chat text", "connection", conn.ID(),
			"error", errors.ErrMalformedPayload)
	}
	switch in.Kind {
	case domain.InboundTyping:
		e.handleTyping(conn, in)
	case domain.InboundJoin:
		e.handleJoin(conn, in)
	default:
		e.handleChat(ctx, conn, in)
	}
}

func (e *Engine) handleTyping(conn contract.Connection, in domain.Inbound) {
	username := in.Username
	if username != "" {
		e.bindName(conn, username)
	} else {
		username, _ = e.registry.NameOf(conn)
	}
	e.broadcast(event.Typing{Username: username, IsTyping: in.IsTyping}, conn)
}

func (e *Engine) handleJoin(conn contract.Connection, in domain.Inbound) {
	if in.Username == "" {
		e.log.Debug("Join without username ignored", "connection", conn.ID())
		return
	}
	e.bindName(conn, in.Username)
	e.broadcast(event.UserJoined{Username: in.Username}, nil)
}

func (e *Engine) handleChat(ctx context.Context, conn contract.Connection, in domain.Inbound) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		e.log.Debug("Empty message dropped", "connection", conn.ID())
		return
	}

	e.monitor.IncrMessages()
	author := e.authorOf(conn, in.Username)
	requestID := e.createRequest(ctx, text, author)
	e.captureFacts(ctx, conn, author, requestID, text)

	e.broadcast(event.MessagePosted{Text: text, Username: author, RequestID: event.RequestID(requestID)}, conn)

	persona, prompt := ResolvePersona(e.resolvers, in, text)
	if persona == "" {
		e.log.Debug("No persona addressed, skipping generation", "request_id", requestID)
		return
	}
	e.respond(ctx, author, persona, prompt, requestID)
}

// authorOf binds the payload name when present, then falls back to the registry.
func (e *Engine) authorOf(conn contract.Connection, username string) string {
	if username != "" {
		e.bindName(conn, username)
		return username
	}
	if name, ok := e.registry.NameOf(conn); ok && name != "" {
		return name
	}
	return unknownAuthor
}

// createRequest returns an empty request id when the store cannot record the message.
func (e *Engine) createRequest(ctx context.Context, text, author string) string {
	metadata := map[string]any{}
	if lang := extraction.DetectLanguage(text); lang != "" {
		metadata[domain.MetadataLanguage] = lang
	}
	requestID, err := e.store.CreateRequest(ctx, text, PublicRoomSession, author, metadata)
	if err != nil {
		e.log.Warn("Failed to create request entry", "author", author, "error", err)
		e.monitor.IncrStoreErrors()
		return ""
	}
	return requestID
}

// captureFacts persists extracted facts only when the user explicitly asked for it.
func (e *Engine) captureFacts(ctx context.Context, conn contract.Connection, author, requestID, text string) {
	candidates := extraction.Extract(text)
	if len(candidates) == 0 {
		return
	}
	if !extraction.IsExplicitSave(text) {
		for _, c := range candidates {
			e.log.Info("Detected candidate fact but not saving (no explicit save)",
				"type", c.Type, "value", c.Value, "author", author)
		}
		return
	}
	for _, c := range candidates {
		fact, err := e.store.UpsertFact(ctx, author, requestID, c)
		if err != nil {
			e.log.Warn("Failed to persist fact", "type", c.Type, "author", author, "error", err)
			e.monitor.IncrStoreErrors()
			continue
		}
		e.log.Info("Explicitly saved fact", "id", fact.ID, "type", fact.Type, "author", author)
		confirmation := event.System{Text: fmt.Sprintf("Saved: %s = %s", c.Type, c.Value)}
		if err := conn.Send(confirmation); err != nil {
			e.log.Debug("Save confirmation not delivered", "connection", conn.ID(), "error", err)
		}
	}
}

func (e *Engine) respond(ctx context.Context, author, persona, prompt, requestID string) {
	if !e.gateway.CanComplete() {
		e.log.Warn("Persona addressed without completion provider", "persona", persona)
		e.broadcast(event.System{Text: providerNotConfigured}, nil)
		return
	}

	assembled, err := e.assembler.Assemble(ctx, author, prompt)
	if err != nil {
		e.failRequest(requestID, err)
		return
	}
	completion, err := e.gateway.Complete(ctx, assembled.Segments)
	if err != nil {
		e.failRequest(requestID, err)
		return
	}

	if requestID != "" {
		metadata := map[string]any{
			domain.MetadataPersona:    persona,
			domain.MetadataCompletion: completion.Metadata,
		}
		if err := e.store.UpdateRequest(ctx, requestID, completion.Text, completion.TokenCount, metadata); err != nil {
			e.log.Warn("Failed to update request entry", "request_id", requestID, "error", err)
			e.monitor.IncrStoreErrors()
		}
	}
	if len(assembled.Embedding) > 0 {
		if err := e.store.InsertMemory(ctx, prompt, assembled.Embedding); err != nil {
			e.log.Warn("Failed to store memory", "request_id", requestID, "error", err)
			e.monitor.IncrStoreErrors()
		}
	}

	e.monitor.IncrReplies()
	e.log.Info("AI response broadcast", "persona", persona, "request_id", requestID, "tokens", completion.TokenCount)
	e.broadcast(event.AIReplied{Text: completion.Text, RequestID: event.RequestID(requestID), Username: persona}, nil)
}

func (e *Engine) failRequest(requestID string, err error) {
	e.log.Error("Generation failed", "request_id", requestID, "error", err)
	e.monitor.IncrGenerationErrors()
	e.broadcast(event.System{Text: fmt.Sprintf(processingErrorMessage, err)}, nil)
}

func (e *Engine) replayHistory(ctx context.Context, conn contract.Connection) {
	records, err := e.store.ListSession(ctx, PublicRoomSession, e.config.HistoryLimit)
	if err != nil {
		e.log.Warn("History replay skipped", "connection", conn.ID(), "error", err)
		return
	}
	for _, record := range records {
		requestID := event.RequestID(record.ID)
		if err := e.deliver(ctx, conn, event.MessagePosted{Text: record.Prompt, Username: record.Author, RequestID: requestID}); err != nil {
			e.log.Warn("History replay interrupted", "connection", conn.ID(), "error", err)
			return
		}
		if !record.Answered() {
			continue
		}
		persona := record.Persona()
		if persona == "" {
			persona = defaultReplayPersona
		}
		if err := e.deliver(ctx, conn, event.AIReplied{Text: *record.Response, RequestID: requestID, Username: persona}); err != nil {
			e.log.Warn("History replay interrupted", "connection", conn.ID(), "error", err)
			return
		}
	}
	e.log.Debug("History replayed", "connection", conn.ID(), "records", len(records))
}

// deliver waits for queue space when conn supports it, a replay must not lose events.
func (e *Engine) deliver(ctx context.Context, conn contract.Connection, evt event.Outbound) error {
	if d, ok := conn.(contract.Deliverer); ok {
		return d.Deliver(ctx, evt)
	}
	return conn.Send(evt)
}

// broadcast sends evt to a snapshot of the room, skipping exclude when set.
func (e *Engine) broadcast(evt event.Outbound, exclude contract.Connection) {
	for _, conn := range e.registry.All() {
		if exclude != nil && conn.ID() == exclude.ID() {
			continue
		}
		e.send(conn, evt)
	}
}

func (e *Engine) send(conn contract.Connection, evt event.Outbound) {
	if err := conn.Send(evt); err != nil {
		e.log.Debug("Event not delivered", "connection", conn.ID(), "type", evt.Kind(), "error", err)
	}
}

func (e *Engine) bindName(conn contract.Connection, name string) {
	e.registry.SetName(conn, name)
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.states[conn.ID()]; ok {
		e.states[conn.ID()] = domain.StateNamed
	}
}

func (e *Engine) forgetState(conn contract.Connection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.states, conn.ID())
}

func (e *Engine) setState(conn contract.Connection, state domain.ConnectionState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.states[conn.ID()] = state
}

type noopMonitor struct{}

func (noopMonitor) IncrMessages()         {}
func (noopMonitor) IncrReplies()          {}
func (noopMonitor) IncrGenerationErrors() {}
func (noopMonitor) IncrStoreErrors()      {}
