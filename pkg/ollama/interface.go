package ollama

import (
	"context"

	"alpaca-ollama/pkg/log"
)

// IOllama defines the interface for the Ollama inference server client.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Embed returns the embedding of text from the first /api/embed record
	Embed(ctx context.Context, text string) (Embedding, error)

	// Chat runs a single-turn chat completion against /api/chat
	Chat(ctx context.Context, input ChatInput) (*ChatResult, error)
}

// New creates a new Ollama client with the given configuration
func New(cfg Config, l log.Logger) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if l == nil {
		l = log.NewNop()
	}
	return newOllamaImpl(cfg, l), nil
}
