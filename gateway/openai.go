package gateway

import (
	"bytes"
	"chat-room/contract"
	"chat-room/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	_ contract.Completer = (*OpenAI)(nil)
	_ contract.Embedder  = (*OpenAI)(nil)
)

// OpenAI talks the OpenAI chat completions and embeddings wire format.
// Any compatible server works (OpenAI, OpenRouter, vLLM, Ollama, LM Studio).
type OpenAI struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	model          string
	embeddingModel string
	maxTokens      int64
}

func NewOpenAI(httpClient *http.Client, baseURL, apiKey, model, embeddingModel string, maxTokens int64) *OpenAI {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenAI{
		httpClient:     httpClient,
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		apiKey:         apiKey,
		model:          model,
		embeddingModel: embeddingModel,
		maxTokens:      maxTokens,
	}
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model     string          `json:"model"`
	Messages  []openaiMessage `json:"messages"`
	MaxTokens int64           `json:"max_tokens,omitempty"`
}

type openaiResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      openaiMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type openaiEmbeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type openaiEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (o *OpenAI) Complete(ctx context.Context, segments []domain.Segment) (domain.Completion, error) {
	request := openaiRequest{Model: o.model, MaxTokens: o.maxTokens}
	for _, s := range segments {
		if s.Content == "" {
			continue
		}
		request.Messages = append(request.Messages, openaiMessage{Role: string(s.Role), Content: s.Content})
	}

	var response openaiResponse
	if err := o.post(ctx, "/chat/completions", request, &response); err != nil {
		return domain.Completion{}, err
	}
	if len(response.Choices) == 0 {
		return domain.Completion{}, fmt.Errorf("llm/openai: response has no choices")
	}

	choice := response.Choices[0]
	return domain.Completion{
		Text:       choice.Message.Content,
		TokenCount: response.Usage.TotalTokens,
		Metadata: map[string]any{
			domain.MetadataProvider: "openai",
			"model":                 response.Model,
			"id":                    response.ID,
			"finish_reason":         choice.FinishReason,
			"input_tokens":          response.Usage.PromptTokens,
			"output_tokens":         response.Usage.CompletionTokens,
		},
	}, nil
}

func (o *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	var response openaiEmbeddingResponse
	if err := o.post(ctx, "/embeddings", openaiEmbeddingRequest{Model: o.embeddingModel, Input: text}, &response); err != nil {
		return nil, err
	}
	if len(response.Data) == 0 {
		return nil, fmt.Errorf("llm/openai: no embeddings returned")
	}
	return response.Data[0].Embedding, nil
}

func (o *OpenAI) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("llm/openai: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("llm/openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("llm/openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("llm/openai: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("llm/openai: decode response: %w", err)
	}
	return nil
}
