package runtime

import (
	"chat-room/domain"
	"chat-room/domain/event"
	"chat-room/errors"
	"chat-room/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type engineFixture struct {
	engine    *Engine
	registry  *Registry
	store     *mocks.MockStore
	gateway   *mocks.MockGateway
	assembler *mocks.MockContextAssembler
}

func newEngineFixture(t *testing.T, config EngineConfig) engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	store := mocks.NewMockStore(ctrl)
	gateway := mocks.NewMockGateway(ctrl)
	assembler := mocks.NewMockContextAssembler(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	engine := NewEngine(log, registry, store, gateway, assembler, config, nil)
	return engineFixture{engine: engine, registry: registry, store: store, gateway: gateway, assembler: assembler}
}

func (f engineFixture) connect(t *testing.T, n int) []*fakeConnection {
	t.Helper()
	conns := make([]*fakeConnection, n)
	for i := range conns {
		conns[i] = newFakeConnection()
		require.NoError(t, f.engine.Connect(context.Background(), conns[i]))
	}
	return conns
}

func TestEngine_Typing_Is_Not_Echoed(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 3)
	alice, bob, carol := conns[0], conns[1], conns[2]

	// When alice starts typing
	f.engine.Handle(context.Background(), alice, []byte(`{"type":"typing","username":"alice","isTyping":true}`))

	// Then everybody but alice is told, and nothing is persisted
	req.Empty(alice.Events())
	req.Equal([]event.Outbound{event.Typing{Username: "alice", IsTyping: true}}, bob.Events())
	req.Equal([]event.Outbound{event.Typing{Username: "alice", IsTyping: true}}, carol.Events())

	// And the name is bound
	name, ok := f.registry.NameOf(alice)
	req.True(ok)
	req.Equal("alice", name)
	req.Equal(domain.StateNamed, f.engine.State(alice))
}

func TestEngine_Join_Is_Broadcast_To_Everyone(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)
	alice, bob := conns[0], conns[1]

	f.engine.Handle(context.Background(), alice, []byte(`{"type":"join","username":"alice"}`))

	expected := []event.Outbound{event.UserJoined{Username: "alice"}}
	req.Equal(expected, alice.Events())
	req.Equal(expected, bob.Events())
}

func TestEngine_Join_Without_Username_Is_Ignored(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)

	f.engine.Handle(context.Background(), conns[0], []byte(`{"type":"join"}`))

	req.Empty(conns[0].Events())
	req.Empty(conns[1].Events())
	req.Equal(domain.StateConnected, f.engine.State(conns[0]))
}

func TestEngine_Chat_Without_Persona_Never_Reaches_Gateway(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)
	alice, bob := conns[0], conns[1]

	// Given the store assigns a request id, and no gateway nor assembler call is expected
	f.store.EXPECT().
		CreateRequest(gomock.Any(), "hello everyone", PublicRoomSession, "alice", gomock.Any()).
		Return("req-1", nil).
		Times(1)

	// When alice talks to the room
	f.engine.Handle(context.Background(), alice, []byte(`{"text":"hello everyone","username":"alice"}`))

	// Then only bob receives the message, with its request id
	req.Empty(alice.Events())
	req.Equal([]event.Outbound{
		event.MessagePosted{Text: "hello everyone", Username: "alice", RequestID: "req-1"},
	}, bob.Events())
}

func TestEngine_Mention_Reaches_Persona(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)
	alice, bob := conns[0], conns[1]
	vector := []float32{0.6, 0.8}

	f.store.EXPECT().CreateRequest(gomock.Any(), "@Bot hello", PublicRoomSession, "A", gomock.Any()).
		Return("r1", nil).Times(1)
	f.gateway.EXPECT().CanComplete().Return(true).Times(1)
	f.assembler.EXPECT().Assemble(gomock.Any(), "A", "hello").
		Return(domain.PromptContext{
			Segments:  []domain.Segment{{Role: domain.RoleUser, Content: "hello"}},
			Embedding: vector,
		}, nil).Times(1)
	f.gateway.EXPECT().Complete(gomock.Any(), []domain.Segment{{Role: domain.RoleUser, Content: "hello"}}).
		Return(domain.Completion{Text: "hi", TokenCount: 7, Metadata: map[string]any{"id": "cmpl-1"}}, nil).Times(1)
	f.store.EXPECT().UpdateRequest(gomock.Any(), "r1", "hi", 7, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ int, metadata map[string]any) error {
			req.Equal("Bot", metadata[domain.MetadataPersona])
			return nil
		}).Times(1)
	f.store.EXPECT().InsertMemory(gomock.Any(), "hello", vector).Return(nil).Times(1)

	// When A addresses the Bot persona
	f.engine.Handle(context.Background(), alice, []byte(`{"text":"@Bot hello","username":"A"}`))

	// Then B sees the raw message first and both see the answer under the same request id
	req.Equal([]event.Outbound{
		event.MessagePosted{Text: "@Bot hello", Username: "A", RequestID: "r1"},
		event.AIReplied{Text: "hi", RequestID: "r1", Username: "Bot"},
	}, bob.Events())
	req.Equal([]event.Outbound{
		event.AIReplied{Text: "hi", RequestID: "r1", Username: "Bot"},
	}, alice.Events())
}

func TestEngine_Explicit_Persona_Keeps_Text(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 1)

	f.store.EXPECT().CreateRequest(gomock.Any(), "what's up", PublicRoomSession, "alice", gomock.Any()).
		Return("r2", nil)
	f.gateway.EXPECT().CanComplete().Return(true)
	f.assembler.EXPECT().Assemble(gomock.Any(), "alice", "what's up").Return(domain.PromptContext{}, nil)
	f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(domain.Completion{Text: "not much"}, nil)
	f.store.EXPECT().UpdateRequest(gomock.Any(), "r2", "not much", 0, gomock.Any()).Return(nil)

	// When the payload names the persona, without an embedding no memory is stored
	f.engine.Handle(context.Background(), conns[0], []byte(`{"text":"what's up","username":"alice","targetPersona":"Sage"}`))

	req.Equal([]event.Outbound{event.AIReplied{Text: "not much", RequestID: "r2", Username: "Sage"}}, conns[0].Events())
}

func TestEngine_Candidate_Facts_Without_Consent_Are_Not_Persisted(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)

	// Given UpsertFact is never expected
	f.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any(), "alice", gomock.Any()).Return("r3", nil)

	f.engine.Handle(context.Background(), conns[0], []byte(`{"text":"My birthday is July 29, 1993","username":"alice"}`))

	req.Empty(conns[0].Events())
	req.Len(conns[1].Events(), 1)
}

func TestEngine_Explicit_Save_Persists_And_Confirms_To_Sender(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)
	alice, bob := conns[0], conns[1]
	text := "Remember that my birthday is July 29, 1993"

	f.store.EXPECT().CreateRequest(gomock.Any(), text, PublicRoomSession, "alice", gomock.Any()).Return("r4", nil)
	f.store.EXPECT().UpsertFact(gomock.Any(), "alice", "r4", gomock.Any()).
		DoAndReturn(func(_ context.Context, author, requestID string, c domain.Candidate) (domain.Fact, error) {
			req.Equal(domain.FactBirthday, c.Type)
			req.Equal("July 29, 1993", c.Value)
			req.Equal("1993-07-29", lo.FromPtr(c.Normalized))
			return domain.Fact{ID: "f1", Username: author, RequestID: requestID, Type: c.Type, Value: c.Value, Active: true}, nil
		}).Times(1)

	f.engine.Handle(context.Background(), alice, []byte(fmt.Sprintf(`{"text":%q,"username":"alice"}`, text)))

	// Then only the sender gets the confirmation
	req.Equal([]event.Outbound{event.System{Text: "Saved: birthday = July 29, 1993"}}, alice.Events())
	req.Equal([]event.Outbound{event.MessagePosted{Text: text, Username: "alice", RequestID: "r4"}}, bob.Events())
}

func TestEngine_Persona_Without_Provider(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)

	f.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("r5", nil)
	f.gateway.EXPECT().CanComplete().Return(false)

	f.engine.Handle(context.Background(), conns[0], []byte(`@Bot hello`))

	req.Equal([]event.Outbound{event.System{Text: "AI provider not configured"}}, conns[0].Events())
	req.Equal([]event.Outbound{
		event.MessagePosted{Text: "@Bot hello", Username: "unknown", RequestID: "r5"},
		event.System{Text: "AI provider not configured"},
	}, conns[1].Events())
}

func TestEngine_Generation_Failure_Becomes_System_Event(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)
	failure := fmt.Errorf("%w: quota exceeded", errors.ErrProviderError)

	// Given the completion fails, UpdateRequest and InsertMemory are never expected
	f.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("r6", nil)
	f.gateway.EXPECT().CanComplete().Return(true)
	f.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any(), "hello").Return(domain.PromptContext{Embedding: []float32{1}}, nil)
	f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(domain.Completion{}, failure)

	f.engine.Handle(context.Background(), conns[0], []byte(`{"text":"@Bot hello","username":"alice"}`))

	expected := event.System{Text: "Error processing request: provider error: quota exceeded"}
	req.Equal([]event.Outbound{expected}, conns[0].Events())
	req.Len(conns[1].Events(), 2)
	req.Equal(expected, conns[1].Events()[1])
}

func TestEngine_Store_Unavailable_Still_Broadcasts(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)

	f.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.ErrStoreUnavailable)

	f.engine.Handle(context.Background(), conns[0], []byte(`{"text":"anyone here?","username":"alice"}`))

	req.Equal([]event.Outbound{
		event.MessagePosted{Text: "anyone here?", Username: "alice", RequestID: ""},
	}, conns[1].Events())
}

func TestEngine_Raw_Text_Uses_Registry_Name(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)
	alice, bob := conns[0], conns[1]

	f.store.EXPECT().CreateRequest(gomock.Any(), "plain text", PublicRoomSession, "alice", gomock.Any()).Return("r7", nil)

	f.engine.Handle(context.Background(), alice, []byte(`{"type":"join","username":"alice"}`))
	f.engine.Handle(context.Background(), alice, []byte("  plain text  "))

	req.Equal([]event.Outbound{
		event.UserJoined{Username: "alice"},
		event.MessagePosted{Text: "plain text", Username: "alice", RequestID: "r7"},
	}, bob.Events())
}

func TestEngine_Empty_Message_Is_Dropped(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)

	f.engine.Handle(context.Background(), conns[0], []byte(`{"text":"   ","username":"alice"}`))
	f.engine.Handle(context.Background(), conns[0], []byte("   "))

	req.Empty(conns[1].Events())
}

func TestEngine_Disconnect_Announces_Named_Connections_Only(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 3)
	alice, anonymous, bob := conns[0], conns[1], conns[2]

	f.engine.Handle(context.Background(), alice, []byte(`{"type":"join","username":"alice"}`))

	// When an unnamed then a named connection leave
	f.engine.Disconnect(anonymous)
	f.engine.Disconnect(alice)

	// Then only the named departure is announced
	req.Equal([]event.Outbound{
		event.UserJoined{Username: "alice"},
		event.UserLeft{Username: "alice"},
	}, bob.Events())
	req.Equal(1, f.engine.ActiveConnections())
	req.Equal(domain.StateClosed, f.engine.State(alice))
}

func TestEngine_Disconnect_While_Generation_Pending(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conns := f.connect(t, 2)
	alice, bob := conns[0], conns[1]

	entered := make(chan struct{})
	release := make(chan struct{})

	f.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any(), "alice", gomock.Any()).Return("r8", nil)
	f.gateway.EXPECT().CanComplete().Return(true)
	f.assembler.EXPECT().Assemble(gomock.Any(), "alice", "tell me a story").Return(domain.PromptContext{}, nil)
	f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []domain.Segment) (domain.Completion, error) {
			close(entered)
			<-release
			return domain.Completion{Text: "once upon a time", TokenCount: 4}, nil
		})
	// Then the record is still updated after the sender left
	f.store.EXPECT().UpdateRequest(gomock.Any(), "r8", "once upon a time", 4, gomock.Any()).Return(nil).Times(1)

	done := make(chan struct{})
	go func() {
		f.engine.Handle(context.Background(), alice, []byte(`{"text":"@Bot tell me a story","username":"alice"}`))
		close(done)
	}()

	// When alice disconnects while the generation is in flight
	<-entered
	f.engine.Disconnect(alice)
	close(release)

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("generation should complete after disconnect")
	}

	// And the remaining connection receives the answer, the sender does not
	req.Equal([]event.Outbound{
		event.MessagePosted{Text: "@Bot tell me a story", Username: "alice", RequestID: "r8"},
		event.UserLeft{Username: "alice"},
		event.AIReplied{Text: "once upon a time", RequestID: "r8", Username: "Bot"},
	}, bob.Events())
	req.Empty(alice.Events())
}

func TestEngine_History_Replay_On_Connect(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{HistoryReplay: true, HistoryLimit: 10})
	answer := "hi there"

	f.store.EXPECT().ListSession(gomock.Any(), PublicRoomSession, 10).Return([]domain.MessageRecord{
		{ID: "r1", Prompt: "hello", Author: "alice"},
		{ID: "r2", Prompt: "@Bot hi", Author: "bob", Response: &answer, Metadata: map[string]any{domain.MetadataPersona: "Bot"}},
	}, nil).Times(1)

	newcomer := newFakeConnection()
	req.NoError(f.engine.Connect(context.Background(), newcomer))

	req.Equal([]event.Outbound{
		event.MessagePosted{Text: "hello", Username: "alice", RequestID: "r1"},
		event.MessagePosted{Text: "@Bot hi", Username: "bob", RequestID: "r2"},
		event.AIReplied{Text: "hi there", RequestID: "r2", Username: "Bot"},
	}, newcomer.Events())
}

func TestEngine_Connect_Twice_Fails(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{})
	conn := newFakeConnection()

	req.NoError(f.engine.Connect(context.Background(), conn))
	err := f.engine.Connect(context.Background(), conn)

	req.ErrorIs(err, errors.ErrAlreadyRegistered)
}

func TestEngine_Reports_Activity_To_Monitor(t *testing.T) {
	f := newEngineFixture(t, EngineConfig{})
	monitor := mocks.NewMockRoomMonitor(gomock.NewController(t))
	f.engine.WithMonitor(monitor)
	conns := f.connect(t, 1)

	// Given a message whose record cannot be created and whose generation fails
	monitor.EXPECT().IncrMessages().Times(1)
	monitor.EXPECT().IncrStoreErrors().Times(1)
	monitor.EXPECT().IncrGenerationErrors().Times(1)
	monitor.EXPECT().IncrReplies().Times(0)
	f.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.ErrStoreUnavailable)
	f.gateway.EXPECT().CanComplete().Return(true)
	f.assembler.EXPECT().Assemble(gomock.Any(), "alice", "hi").Return(domain.PromptContext{}, nil)
	f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(domain.Completion{}, errors.ErrProviderError)

	// When it is handled, the mock controller verifies each counter
	f.engine.Handle(context.Background(), conns[0], []byte(`{"text":"@Bot hi","username":"alice"}`))
}

// queuedConnection accepts only one event through Send, like a full outbound buffer,
// and records what Deliver hands over.
type queuedConnection struct {
	*fakeConnection
	sent int
}

func (c *queuedConnection) Send(e event.Outbound) error {
	c.sent++
	if c.sent > 1 {
		return nil
	}
	return c.fakeConnection.Send(e)
}

func (c *queuedConnection) Deliver(_ context.Context, e event.Outbound) error {
	return c.fakeConnection.Send(e)
}

func TestEngine_History_Replay_Waits_For_Delivery(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{HistoryReplay: true, HistoryLimit: 20})
	answer := "sure"
	records := make([]domain.MessageRecord, 20)
	for i := range records {
		records[i] = domain.MessageRecord{ID: fmt.Sprintf("r%d", i), Prompt: "@Bot hi", Author: "alice", Response: &answer}
	}
	f.store.EXPECT().ListSession(gomock.Any(), PublicRoomSession, 20).Return(records, nil)

	// Given a connection whose Send would drop everything after the first event
	newcomer := &queuedConnection{fakeConnection: newFakeConnection()}

	// When it connects
	req.NoError(f.engine.Connect(context.Background(), newcomer))

	// Then every record is replayed as a prompt followed by its answer
	events := newcomer.Events()
	req.Len(events, 40)
	req.Equal(event.MessagePosted{Text: "@Bot hi", Username: "alice", RequestID: "r19"}, events[38])
	req.Equal(event.AIReplied{Text: "sure", RequestID: "r19", Username: "AI"}, events[39])
	req.Zero(newcomer.sent)
}

func TestEngine_History_Replay_Stops_When_Connection_Lost(t *testing.T) {
	req := require.New(t)
	f := newEngineFixture(t, EngineConfig{HistoryReplay: true, HistoryLimit: 5})
	f.store.EXPECT().ListSession(gomock.Any(), PublicRoomSession, 5).Return([]domain.MessageRecord{
		{ID: "r1", Prompt: "one", Author: "alice"},
		{ID: "r2", Prompt: "two", Author: "alice"},
	}, nil)
	deliverer := mocks.NewMockDeliverer(gomock.NewController(t))
	conn := lostConnection{MockDeliverer: deliverer, id: "lost"}

	// Given the client is already gone, only the first delivery is attempted
	deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.ErrConnectionLost).Times(1)

	req.NoError(f.engine.Connect(context.Background(), conn))
}

type lostConnection struct {
	*mocks.MockDeliverer
	id string
}

func (c lostConnection) ID() string { return c.id }

func (c lostConnection) Send(event.Outbound) error { return errors.ErrConnectionLost }
