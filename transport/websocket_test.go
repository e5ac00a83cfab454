package transport

import (
	"chat-room/assembler"
	"chat-room/domain/event"
	"chat-room/errors"
	"chat-room/domain"
	"chat-room/gateway"
	"chat-room/mocks"
	"chat-room/repositories"
	"chat-room/runtime"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomFixture struct {
	server *httptest.Server
	engine *runtime.Engine
}

// newRoom serves a complete room without persistence, answering with the offline providers.
func newRoom(t *testing.T, origins ...string) roomFixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := repositories.Unavailable{}

	gw, err := gateway.New(log, gateway.Echo{}, gateway.NewHashEmbedder(8), 0)
	require.NoError(t, err)
	asm := assembler.New(log, store, store, gw, 0)
	engine := runtime.NewEngine(log, runtime.NewRegistry(), store, gw, asm, runtime.EngineConfig{}, nil)
	return serveRoom(t, engine, WebsocketConfig{AllowedOrigins: origins})
}

func serveRoom(t *testing.T, engine *runtime.Engine, config WebsocketConfig) roomFixture {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := repositories.Unavailable{}

	ws := NewWebsocketServer(ctx, log, engine, config)
	mux := http.NewServeMux()
	NewAPI(log, engine, store, store, Status{Store: "unavailable"}).Routes(mux, ws)
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		cancel()
		server.Close()
	})
	return roomFixture{server: server, engine: engine}
}

func (f roomFixture) dial(t *testing.T, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, frame string) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
}

func receive(t *testing.T, conn *websocket.Conn) event.Outbound {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)
	e, err := event.Decode(frame)
	require.NoError(t, err)
	return e
}

func TestWebsocket_Persona_Conversation(t *testing.T) {
	req := require.New(t)
	room := newRoom(t)

	// Given two clients in the room
	alice := room.dial(t, nil)
	bob := room.dial(t, nil)
	req.Eventually(func() bool { return room.engine.ActiveConnections() == 2 }, 2*time.Second, 10*time.Millisecond)

	send(t, alice, `{"type":"join","username":"alice"}`)
	req.Equal(event.UserJoined{Username: "alice"}, receive(t, alice))
	req.Equal(event.UserJoined{Username: "alice"}, receive(t, bob))

	// When alice addresses a persona
	send(t, alice, `{"text":"@Bot hello there"}`)

	// Then bob sees the message, then everyone gets the reply
	req.Equal(event.MessagePosted{Text: "@Bot hello there", Username: "alice"}, receive(t, bob))
	req.Equal(event.AIReplied{Text: "echo: hello there", Username: "Bot"}, receive(t, bob))
	req.Equal(event.AIReplied{Text: "echo: hello there", Username: "Bot"}, receive(t, alice))

	// When alice leaves
	req.NoError(alice.Close())

	// Then bob is told
	req.Equal(event.UserLeft{Username: "alice"}, receive(t, bob))
	req.Eventually(func() bool { return room.engine.ActiveConnections() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWebsocket_Typing_Is_Not_Echoed(t *testing.T) {
	req := require.New(t)
	room := newRoom(t)
	alice := room.dial(t, nil)
	bob := room.dial(t, nil)
	req.Eventually(func() bool { return room.engine.ActiveConnections() == 2 }, 2*time.Second, 10*time.Millisecond)

	send(t, alice, `{"type":"typing","username":"alice","isTyping":true}`)
	send(t, alice, `{"type":"join","username":"alice"}`)

	req.Equal(event.Typing{Username: "alice", IsTyping: true}, receive(t, bob))
	// The first frame alice gets is her own join, not her typing
	req.Equal(event.UserJoined{Username: "alice"}, receive(t, alice))
}

func TestWebsocket_Rejects_Unknown_Origin(t *testing.T) {
	req := require.New(t)
	room := newRoom(t, "http://allowed.example")
	url := "ws" + strings.TrimPrefix(room.server.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://evil.example"}})

	req.Error(err)
	req.Equal(http.StatusForbidden, resp.StatusCode)

	conn := room.dial(t, http.Header{"Origin": []string{"http://allowed.example"}})
	req.NotNil(conn)
}

func TestConnection_Send_Never_Blocks(t *testing.T) {
	req := require.New(t)
	conn := newConnection(nil, 1, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given a full outbound buffer
	req.NoError(conn.Send(event.System{Text: "first"}))

	// When another event arrives it is dropped
	req.NoError(conn.Send(event.System{Text: "second"}))
	req.Len(conn.out, 1)

	// And once closed every send reports the lost connection
	conn.close()
	conn.close()
	req.ErrorIs(conn.Send(event.System{Text: "third"}), errors.ErrConnectionLost)
}

func TestWebsocket_History_Replay_Larger_Than_Outbound_Buffer(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := mocks.NewMockStore(gomock.NewController(t))
	answer := "noted"
	records := make([]domain.MessageRecord, 50)
	for i := range records {
		records[i] = domain.MessageRecord{
			ID:       fmt.Sprintf("r%02d", i),
			Prompt:   fmt.Sprintf("question %d", i),
			Author:   "alice",
			Response: &answer,
			Metadata: map[string]any{domain.MetadataPersona: "Bot"},
		}
	}
	store.EXPECT().ListSession(gomock.Any(), runtime.PublicRoomSession, 50).Return(records, nil)
	gw, err := gateway.New(log, gateway.Echo{}, nil, 0)
	req.NoError(err)
	asm := assembler.New(log, store, store, gw, 0)
	engine := runtime.NewEngine(log, runtime.NewRegistry(), store, gw, asm,
		runtime.EngineConfig{HistoryReplay: true, HistoryLimit: 50}, nil)

	// Given an outbound buffer much smaller than the history
	room := serveRoom(t, engine, WebsocketConfig{OutboundBufferSize: 4})

	// When a client connects
	conn := room.dial(t, nil)

	// Then every record arrives as its prompt followed by its answer, in order
	for i := range records {
		requestID := event.RequestID(records[i].ID)
		req.Equal(event.MessagePosted{Text: records[i].Prompt, Username: "alice", RequestID: requestID}, receive(t, conn))
		req.Equal(event.AIReplied{Text: "noted", RequestID: requestID, Username: "Bot"}, receive(t, conn))
	}
}

// gatedCompleter holds every completion until release is closed.
type gatedCompleter struct {
	entered chan struct{}
	release chan struct{}
}

func (c gatedCompleter) Complete(ctx context.Context, segments []domain.Segment) (domain.Completion, error) {
	c.entered <- struct{}{}
	<-c.release
	return gateway.Echo{}.Complete(ctx, segments)
}

func TestWebsocket_Disconnect_After_Queued_Payloads(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := repositories.Unavailable{}
	completer := gatedCompleter{entered: make(chan struct{}, 1), release: make(chan struct{})}
	gw, err := gateway.New(log, completer, nil, 0)
	req.NoError(err)
	asm := assembler.New(log, store, store, gw, 0)
	engine := runtime.NewEngine(log, runtime.NewRegistry(), store, gw, asm, runtime.EngineConfig{}, nil)
	room := serveRoom(t, engine, WebsocketConfig{})

	alice := room.dial(t, nil)
	bob := room.dial(t, nil)
	req.Eventually(func() bool { return room.engine.ActiveConnections() == 2 }, 2*time.Second, 10*time.Millisecond)
	send(t, alice, `{"type":"join","username":"alice"}`)
	req.Equal(event.UserJoined{Username: "alice"}, receive(t, bob))

	// Given alice's question is being answered and a second message is queued behind it
	send(t, alice, `{"text":"@Bot slow question"}`)
	req.Equal(event.MessagePosted{Text: "@Bot slow question", Username: "alice"}, receive(t, bob))
	<-completer.entered
	send(t, alice, "hello after question")

	// When alice leaves before the answer
	req.NoError(alice.Close())
	time.Sleep(100 * time.Millisecond)
	close(completer.release)

	// Then bob sees the answer and the queued message under alice's name, and only then her departure
	req.Equal(event.AIReplied{Text: "echo: slow question", Username: "Bot"}, receive(t, bob))
	req.Equal(event.MessagePosted{Text: "hello after question", Username: "alice"}, receive(t, bob))
	req.Equal(event.UserLeft{Username: "alice"}, receive(t, bob))
	req.Eventually(func() bool { return room.engine.ActiveConnections() == 1 }, 2*time.Second, 10*time.Millisecond)
}
