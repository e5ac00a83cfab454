package gateway

import (
	"chat-room/contract"
	"chat-room/domain"
	"context"
	"fmt"

	"google.golang.org/genai"
)

var (
	_ contract.Completer = (*Gemini)(nil)
	_ contract.Embedder  = (*Gemini)(nil)
)

// Gemini serves both completions and embeddings through the Gemini API.
type Gemini struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGemini(ctx context.Context, apiKey, model, embeddingModel string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, embeddingModel: embeddingModel}, nil
}

func (g *Gemini) Complete(ctx context.Context, segments []domain.Segment) (domain.Completion, error) {
	system, contents := geminiContents(segments)
	var config *genai.GenerateContentConfig
	if system != nil {
		config = &genai.GenerateContentConfig{SystemInstruction: system}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return domain.Completion{}, fmt.Errorf("gemini generate failed: %w", err)
	}

	metadata := map[string]any{
		domain.MetadataProvider: "gemini",
		"model":                 resp.ModelVersion,
		"id":                    resp.ResponseID,
	}
	if len(resp.Candidates) > 0 {
		metadata["finish_reason"] = string(resp.Candidates[0].FinishReason)
	}
	var tokens int
	if resp.UsageMetadata != nil {
		tokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return domain.Completion{Text: resp.Text(), TokenCount: tokens, Metadata: metadata}, nil
}

func (g *Gemini) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := g.client.Models.EmbedContent(ctx, g.embeddingModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini embedding failed: %w", err)
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return resp.Embeddings[0].Values, nil
}

// geminiContents maps segments to a system instruction and the conversation turns.
func geminiContents(segments []domain.Segment) (*genai.Content, []*genai.Content) {
	system, conversation := splitSystem(segments)
	var instruction *genai.Content
	if system != "" {
		instruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	contents := make([]*genai.Content, 0, len(conversation))
	for _, s := range conversation {
		role := genai.Role(genai.RoleUser)
		if s.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(s.Content, role))
	}
	return instruction, contents
}
