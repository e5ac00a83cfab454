package main

import (
	"bufio"
	"chat-room/domain/event"
	"chat-room/projection"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerURL string `envconfig:"CHAT_SERVER_URL" default:"ws://localhost:8000/ws"`
	Username  string `envconfig:"CHAT_USERNAME" required:"true"`
	// CHAT_COLOURS enables colorized output
	Colours bool `envconfig:"CHAT_COLOURS" default:"true"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chatclient: %v\n", err)
		os.Exit(1)
	}
}

// run joins the room, prints every event and sends each stdin line as a chat message.
// A line starting with @Name addresses that persona, /history prints the local timeline.
func run() error {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return err
	}
	color.Enable = config.Colours

	conn, _, err := websocket.DefaultDialer.Dial(config.ServerURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", config.ServerURL, err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"type": "join", "username": config.Username}); err != nil {
		return err
	}

	timeline := projection.NewTimeline(config.Username)
	received := make(chan event.Outbound)
	done := make(chan error, 1)
	go func() {
		for {
			_, frame, err := conn.ReadMessage()
			if err != nil {
				done <- err
				return
			}
			e, err := event.Decode(frame)
			if err != nil {
				fmt.Println(color.Gray.Sprintf("? %s", frame))
				continue
			}
			received <- e
		}
	}()

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return closeGracefully(conn)
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			if strings.TrimSpace(line) == "/history" {
				printHistory(timeline)
				continue
			}
			timeline.Local(line)
			payload, _ := json.Marshal(map[string]string{"text": line, "username": config.Username})
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return err
			}
		case e := <-received:
			timeline.Consume(e)
			fmt.Println(format(e))
		case err := <-done:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		case <-signals:
			return closeGracefully(conn)
		}
	}
}

func closeGracefully(conn *websocket.Conn) error {
	return conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func printHistory(timeline *projection.Timeline) {
	for _, entry := range timeline.Entries {
		author := entry.Author
		if author == "" {
			author = "?"
		}
		fmt.Printf("%s %s %s\n", color.Gray.Sprint(entry.At.Format("15:04:05")), color.Cyan.Sprintf("%s:", author), entry.Text)
		for _, reply := range entry.Replies {
			fmt.Printf("    %s %s\n", color.Magenta.Sprintf("[%s]", reply.Persona), reply.Text)
		}
	}
}

func format(e event.Outbound) string {
	switch v := e.(type) {
	case event.MessagePosted:
		return fmt.Sprintf("%s %s", color.Cyan.Sprintf("%s:", v.Username), v.Text)
	case event.AIReplied:
		return fmt.Sprintf("%s %s", color.Magenta.Sprintf("[%s]", v.Username), v.Text)
	case event.Typing:
		if v.IsTyping {
			return color.Gray.Sprintf("%s is typing...", v.Username)
		}
		return color.Gray.Sprintf("%s stopped typing", v.Username)
	case event.UserJoined:
		return color.Green.Sprintf("→ %s joined", v.Username)
	case event.UserLeft:
		return color.Yellow.Sprintf("← %s left", v.Username)
	case event.System:
		return color.Red.Sprintf("* %s", v.Text)
	default:
		return fmt.Sprintf("%v", e)
	}
}
