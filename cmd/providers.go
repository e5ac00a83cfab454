package main

import (
	"chat-room/contract"
	"chat-room/gateway"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
)

// buildGateway instantiates the configured providers, sharing one client when both use the same backend.
func buildGateway(ctx context.Context, config Config, logger *slog.Logger) (*gateway.Gateway, error) {
	var (
		gemini *gateway.Gemini
		openai *gateway.OpenAI
		err    error
	)
	uses := func(name string) bool {
		return config.CompletionProvider == name || config.EmbeddingProvider == name
	}
	if uses("gemini") {
		if gemini, err = gateway.NewGemini(ctx, config.GeminiAPIKey, config.GeminiModel, config.GeminiEmbeddingModel); err != nil {
			return nil, err
		}
	}
	if uses("openai") {
		openai = gateway.NewOpenAI(&http.Client{Timeout: 2 * time.Minute}, config.OpenAIBaseURL, config.OpenAIAPIKey,
			config.OpenAIModel, config.OpenAIEmbeddingModel, config.MaxTokens)
	}

	var completer contract.Completer
	switch config.CompletionProvider {
	case "anthropic":
		completer = gateway.NewAnthropic(config.AnthropicModel, config.MaxTokens, option.WithAPIKey(config.AnthropicAPIKey))
	case "gemini":
		completer = gemini
	case "openai":
		completer = openai
	case "offline":
		completer = gateway.Echo{}
	}

	var embedder contract.Embedder
	switch config.EmbeddingProvider {
	case "gemini":
		embedder = gemini
	case "openai":
		embedder = openai
	case "offline":
		embedder = gateway.NewHashEmbedder(gateway.DefaultOfflineDimensions)
	}

	logger.Info("Generation providers",
		"completion", config.CompletionProvider,
		"embedding", config.EmbeddingProvider,
		"cache_size", config.EmbeddingCacheSize)
	return gateway.New(logger, completer, embedder, config.EmbeddingCacheSize)
}
