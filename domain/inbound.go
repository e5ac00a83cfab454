package domain

import (
	"strings"

	"github.com/tidwall/gjson"
)

type InboundKind int

const (
	InboundChat InboundKind = iota
	InboundTyping
	InboundJoin
)

func (k InboundKind) String() string {
	switch k {
	case InboundTyping:
		return "typing"
	case InboundJoin:
		return "join"
	default:
		return "chat"
	}
}

// Inbound is a classified client frame.
// Structured is false when the frame was not a JSON object and Text holds the raw frame.
type Inbound struct {
	Kind          InboundKind
	Username      string
	IsTyping      bool
	Text          string
	TargetPersona string
	Structured    bool
}

// ParseInbound classifies a raw frame. It never fails: anything that is not
// a recognised JSON object is a chat message whose text is the raw frame.
func ParseInbound(raw []byte) Inbound {
	if !gjson.ValidBytes(raw) {
		return Inbound{Kind: InboundChat, Text: string(raw)}
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return Inbound{Kind: InboundChat, Text: string(raw)}
	}

	in := Inbound{
		Username:      stringField(parsed, "username"),
		TargetPersona: stringField(parsed, "targetPersona"),
		Structured:    true,
	}
	switch stringField(parsed, "type") {
	case "typing":
		in.Kind = InboundTyping
		in.IsTyping = parsed.Get("isTyping").Bool()
		return in
	case "join":
		in.Kind = InboundJoin
		return in
	}

	in.Kind = InboundChat
	in.Text = rawString(parsed, "text")
	if in.Text == "" {
		in.Text = rawString(parsed, "message")
	}
	if in.Text == "" {
		in.Text = string(raw)
	}
	return in
}

func stringField(r gjson.Result, path string) string {
	return strings.TrimSpace(rawString(r, path))
}

func rawString(r gjson.Result, path string) string {
	value := r.Get(path)
	if value.Type != gjson.String {
		return ""
	}
	return value.String()
}
