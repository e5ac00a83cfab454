package transport

import (
	"chat-room/domain"
	"time"
)

type factView struct {
	ID              string         `json:"id"`
	Username        string         `json:"username"`
	RequestID       string         `json:"request_id,omitempty"`
	Type            string         `json:"fact_type"`
	Value           string         `json:"value"`
	NormalizedValue *string        `json:"normalized_value"`
	Confidence      float64        `json:"confidence"`
	Active          bool           `json:"active"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func toFactView(f domain.Fact) factView {
	return factView{
		ID:              f.ID,
		Username:        f.Username,
		RequestID:       f.RequestID,
		Type:            string(f.Type),
		Value:           f.Value,
		NormalizedValue: f.NormalizedValue,
		Confidence:      f.Confidence,
		Active:          f.Active,
		Metadata:        f.Metadata,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

type recordView struct {
	ID         string         `json:"id"`
	Prompt     string         `json:"prompt"`
	Response   *string        `json:"response"`
	TokensUsed *int           `json:"tokens_used"`
	Author     string         `json:"author"`
	SessionID  string         `json:"session_id"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func toRecordView(r domain.MessageRecord) recordView {
	return recordView{
		ID:         r.ID,
		Prompt:     r.Prompt,
		Response:   r.Response,
		TokensUsed: r.TokensUsed,
		Author:     r.Author,
		SessionID:  r.SessionID,
		Metadata:   r.Metadata,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type envelope struct {
	OK     bool   `json:"ok"`
	Data   any    `json:"data,omitempty"`
	Result any    `json:"result,omitempty"`
	Note   string `json:"note,omitempty"`
	Error  string `json:"error,omitempty"`
}
