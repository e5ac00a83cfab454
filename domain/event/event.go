package event

import (
	"chat-room/errors"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

type Kind string

const (
	KindMessage    Kind = "message"
	KindAI         Kind = "ai"
	KindTyping     Kind = "typing"
	KindUserJoined Kind = "user.joined"
	KindUserLeft   Kind = "user.left"
	KindSystem     Kind = "system"
)

// Outbound is one event fanned out to connections, one JSON object per frame.
type Outbound interface {
	Kind() Kind
}

// RequestID correlates a message with its AI response, it encodes as null when empty.
type RequestID string

func (id RequestID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}

func (id *RequestID) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*id = ""
		return nil
	}
	*id = RequestID(*s)
	return nil
}

type MessagePosted struct {
	Text      string    `json:"text"`
	Username  string    `json:"username"`
	RequestID RequestID `json:"request_id"`
}

type AIReplied struct {
	Text      string    `json:"text"`
	RequestID RequestID `json:"request_id"`
	Username  string    `json:"username"`
}

type Typing struct {
	Username string `json:"username"`
	IsTyping bool   `json:"isTyping"`
}

type UserJoined struct {
	Username string `json:"username"`
}

type UserLeft struct {
	Username string `json:"username"`
}

type System struct {
	Text string `json:"text"`
}

func (MessagePosted) Kind() Kind { return KindMessage }
func (AIReplied) Kind() Kind     { return KindAI }
func (Typing) Kind() Kind        { return KindTyping }
func (UserJoined) Kind() Kind    { return KindUserJoined }
func (UserLeft) Kind() Kind      { return KindUserLeft }
func (System) Kind() Kind        { return KindSystem }

func (e MessagePosted) MarshalJSON() ([]byte, error) {
	type wire MessagePosted
	return tagged(e.Kind(), wire(e))
}

func (e AIReplied) MarshalJSON() ([]byte, error) {
	type wire AIReplied
	return tagged(e.Kind(), wire(e))
}

func (e Typing) MarshalJSON() ([]byte, error) {
	type wire Typing
	return tagged(e.Kind(), wire(e))
}

func (e UserJoined) MarshalJSON() ([]byte, error) {
	type wire UserJoined
	return tagged(e.Kind(), wire(e))
}

func (e UserLeft) MarshalJSON() ([]byte, error) {
	type wire UserLeft
	return tagged(e.Kind(), wire(e))
}

func (e System) MarshalJSON() ([]byte, error) {
	type wire System
	return tagged(e.Kind(), wire(e))
}

// tagged writes the "type" discriminator followed by the payload fields.
func tagged(kind Kind, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	head, err := json.Marshal(kind)
	if err != nil {
		return nil, err
	}
	out := append([]byte(`{"type":`), head...)
	if len(body) > 2 {
		out = append(out, ',')
	}
	return append(out, body[1:]...), nil
}

// Decode reads one outbound frame back into its variant.
func Decode(frame []byte) (Outbound, error) {
	kind := Kind(gjson.GetBytes(frame, "type").String())
	var target Outbound
	switch kind {
	case KindMessage:
		target = &MessagePosted{}
	case KindAI:
		target = &AIReplied{}
	case KindTyping:
		target = &Typing{}
	case KindUserJoined:
		target = &UserJoined{}
	case KindUserLeft:
		target = &UserLeft{}
	case KindSystem:
		target = &System{}
	default:
		return nil, fmt.Errorf("%w: unknown event type %q", errors.ErrMalformedPayload, kind)
	}
	if err := json.Unmarshal(frame, target); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedPayload, err)
	}
	return deref(target), nil
}

func deref(o Outbound) Outbound {
	switch e := o.(type) {
	case *MessagePosted:
		return *e
	case *AIReplied:
		return *e
	case *Typing:
		return *e
	case *UserJoined:
		return *e
	case *UserLeft:
		return *e
	case *System:
		return *e
	default:
		return o
	}
}
