package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	Host               string        `env:"HOST,default=0.0.0.0"`
	Port               int           `env:"PORT,default=8000" validate:"gte=1,lte=65535"`
	OpsPort            int           `env:"OPS_PORT,default=0" validate:"gte=0,lte=65535"`
	DebugPort          int           `env:"DEBUG_PORT,default=0" validate:"gte=0,lte=65535"`
	AllowedOrigins     string        `env:"ALLOWED_ORIGINS"`
	InboundBufferSize  int           `env:"INBOUND_BUFFER_SIZE,default=16" validate:"gte=1"`
	OutboundBufferSize int           `env:"OUTBOUND_BUFFER_SIZE,default=64" validate:"gte=1"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT,default=10s" validate:"gt=0"`
	PingInterval       time.Duration `env:"PING_INTERVAL,default=30s" validate:"gte=0"`
	MaxMessageSize     int64         `env:"MAX_MESSAGE_SIZE,default=65536" validate:"gte=0"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s" validate:"gt=0"`

	StoreEnabled    bool          `env:"STORE_ENABLED,default=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,default=data/badger" validate:"required_if=StoreEnabled true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,default=data/bluge" validate:"required_if=StoreEnabled true"`
	MemoryFilepath  string        `env:"MEMORY_FILEPATH,default=data/memories"`
	StoreWorkers    int           `env:"STORE_WORKERS,default=5" validate:"gte=1"`
	StoreQueueSize  int           `env:"STORE_QUEUE_SIZE,default=64" validate:"gte=1"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	StatsInterval   time.Duration `env:"STATS_INTERVAL,default=5s" validate:"gt=0"`
	HistoryReplay   bool          `env:"HISTORY_REPLAY,default=false"`
	HistoryLimit    int           `env:"HISTORY_LIMIT,default=50" validate:"gte=0"`
	MemoryTopK      int           `env:"MEMORY_TOP_K,default=5" validate:"gte=1"`

	CompletionProvider   string `env:"COMPLETION_PROVIDER,default=none" validate:"oneof=none offline anthropic gemini openai"`
	EmbeddingProvider    string `env:"EMBEDDING_PROVIDER,default=none" validate:"oneof=none offline gemini openai"`
	MaxTokens            int64  `env:"MAX_TOKENS,default=1024" validate:"gte=1"`
	EmbeddingCacheSize   int64  `env:"EMBEDDING_CACHE_SIZE,default=1000" validate:"gte=0"`
	AnthropicAPIKey      string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel       string `env:"ANTHROPIC_MODEL,default=claude-sonnet-4-5"`
	GeminiAPIKey         string `env:"GEMINI_API_KEY"`
	GeminiModel          string `env:"GEMINI_MODEL,default=gemini-2.5-flash"`
	GeminiEmbeddingModel string `env:"GEMINI_EMBEDDING_MODEL,default=gemini-embedding-001"`
	OpenAIBaseURL        string `env:"OPENAI_BASE_URL,default=https://api.openai.com/v1" validate:"omitempty,url"`
	OpenAIAPIKey         string `env:"OPENAI_API_KEY"`
	OpenAIModel          string `env:"OPENAI_MODEL,default=gpt-4o"`
	OpenAIEmbeddingModel string `env:"OPENAI_EMBEDDING_MODEL,default=text-embedding-3-small"`
}

// Validate checks ranges and the credentials of the selected providers.
func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return err
	}
	providers := []string{c.CompletionProvider, c.EmbeddingProvider}
	for _, p := range providers {
		switch {
		case p == "anthropic" && c.AnthropicAPIKey == "":
			return fmt.Errorf("ANTHROPIC_API_KEY is required by the anthropic provider")
		case p == "gemini" && c.GeminiAPIKey == "":
			return fmt.Errorf("GEMINI_API_KEY is required by the gemini provider")
		}
	}
	return nil
}

func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
