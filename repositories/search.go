package repositories

import (
	"chat-room/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
)

const (
	idField       = "_id"
	promptField   = "prompt"
	responseField = "response"
	authorField   = "author"
)

// MessageIndex is a full-text index over message prompts and responses.
type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(config bluge.Config, log *slog.Logger) (*MessageIndex, error) {
	writer, err := bluge.OpenWriter(config)
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	return &MessageIndex{writer: writer, log: log}, nil
}

// Index adds or replaces the document of a record.
func (i *MessageIndex) Index(record domain.MessageRecord) error {
	doc := bluge.NewDocument(record.ID).
		AddField(bluge.NewTextField(promptField, record.Prompt)).
		AddField(bluge.NewKeywordField(authorField, record.Author).StoreValue())
	if record.Response != nil {
		doc.AddField(bluge.NewTextField(responseField, *record.Response))
	}
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the ids of the best matching records, best first.
func (i *MessageIndex) Search(ctx context.Context, query string, limit int) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()

	q := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField(promptField)).
		AddShould(bluge.NewMatchQuery(query).SetField(responseField)).
		SetMinShould(1)
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, err
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == idField {
				ids = append(ids, string(value))
				return false
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i *MessageIndex) Close() error {
	return i.writer.Close()
}
