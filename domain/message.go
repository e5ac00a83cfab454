// Package domain contains core concepts of the chat room.
// This file defines the Message Record, one accepted chat message and its optional AI response.
package domain

import "time"

const (
	MetadataLanguage   = "lang"
	MetadataPersona    = "persona"
	MetadataCompletion = "completion"
	MetadataProvider   = "provider"
)

// MessageRecord is persisted when a chat message is accepted.
// Its ID is the request id correlating the prompt with the AI response.
type MessageRecord struct {
	ID         string
	Prompt     string
	Response   *string
	TokensUsed *int
	Author     string
	SessionID  string
	Metadata   map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Answered reports whether a generation result was attached to the record.
func (m MessageRecord) Answered() bool {
	return m.Response != nil
}

// Persona returns the AI responder name stored with the response, if any.
func (m MessageRecord) Persona() string {
	persona, _ := m.Metadata[MetadataPersona].(string)
	return persona
}
