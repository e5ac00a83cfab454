// Package projection builds local timelines from observed room events.
// Replies are attached to their prompt through the request id.
// Does not emit events or interact with the transport.
package projection

import (
	"chat-room/domain/event"
	"time"
)

// Entry is one prompt of the room and the persona replies it received.
type Entry struct {
	RequestID event.RequestID
	Author    string
	Text      string
	Replies   []Reply
	At        time.Time
}

type Reply struct {
	Persona string
	Text    string
}

// Timeline holds a simple local timeline
type Timeline struct {
	Owner   string
	Entries []Entry
	now     func() time.Time
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{Owner: owner, now: time.Now}
}

// Consume records chat messages and attaches AI replies, other events are ignored.
func (t *Timeline) Consume(e event.Outbound) {
	switch evt := e.(type) {
	case event.MessagePosted:
		t.Entries = append(t.Entries, Entry{RequestID: evt.RequestID, Author: evt.Username, Text: evt.Text, At: t.now()})
	case event.AIReplied:
		reply := Reply{Persona: evt.Username, Text: evt.Text}
		if i := t.find(evt.RequestID); i >= 0 {
			t.Entries[i].Replies = append(t.Entries[i].Replies, reply)
			return
		}
		t.Entries = append(t.Entries, Entry{RequestID: evt.RequestID, Replies: []Reply{reply}, At: t.now()})
	}
}

// Local records a message sent by the owner, the server does not echo it back.
// Its request id is unknown until a reply references it.
func (t *Timeline) Local(text string) {
	t.Entries = append(t.Entries, Entry{Author: t.Owner, Text: text, At: t.now()})
}

// find returns the latest entry with id, or the latest unresolved local entry when id is unknown.
func (t *Timeline) find(id event.RequestID) int {
	for i := len(t.Entries) - 1; i >= 0; i-- {
		if id != "" && t.Entries[i].RequestID == id {
			return i
		}
	}
	for i := len(t.Entries) - 1; i >= 0; i-- {
		entry := t.Entries[i]
		if entry.RequestID == "" && entry.Author == t.Owner && len(entry.Replies) == 0 {
			t.Entries[i].RequestID = id
			return i
		}
	}
	return -1
}
