package usecase

import (
	"context"

	pkgLog "alpaca-ollama/pkg/log"
	"alpaca-ollama/pkg/ollama"
)

// Chatter runs one chat completion. ollama.IOllama satisfies it.
type Chatter interface {
	Chat(ctx context.Context, input ollama.ChatInput) (*ollama.ChatResult, error)
}

type implUseCase struct {
	l    pkgLog.Logger
	chat Chatter
}

// New creates a new completion UseCase instance.
func New(l pkgLog.Logger, chat Chatter) *implUseCase {
	return &implUseCase{
		l:    l,
		chat: chat,
	}
}
