package http

import (
	"alpaca-ollama/internal/completion"
	"alpaca-ollama/pkg/log"
)

type handler struct {
	l  log.Logger
	uc completion.UseCase
}

// New creates a new HTTP handler for the completion domain.
func New(l log.Logger, uc completion.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
