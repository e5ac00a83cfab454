package gateway

import (
	"chat-room/contract"
	"chat-room/domain"
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var _ contract.Completer = (*Anthropic)(nil)

// Anthropic completes with the Messages API. It has no embedding endpoint.
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func NewAnthropic(model string, maxTokens int64, opts ...option.RequestOption) *Anthropic {
	return &Anthropic{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (a *Anthropic) Complete(ctx context.Context, segments []domain.Segment) (domain.Completion, error) {
	system, conversation := splitSystem(segments)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages:  anthropicMessages(conversation),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return domain.Completion{}, fmt.Errorf("claude api error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return domain.Completion{
		Text:       text.String(),
		TokenCount: int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		Metadata: map[string]any{
			domain.MetadataProvider: "anthropic",
			"model":                 string(resp.Model),
			"id":                    resp.ID,
			"stop_reason":           string(resp.StopReason),
			"input_tokens":          resp.Usage.InputTokens,
			"output_tokens":         resp.Usage.OutputTokens,
		},
	}, nil
}

func anthropicMessages(conversation []domain.Segment) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, len(conversation))
	for _, s := range conversation {
		block := anthropic.NewTextBlock(s.Content)
		if s.Role == domain.RoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
			continue
		}
		messages = append(messages, anthropic.NewUserMessage(block))
	}
	return messages
}
