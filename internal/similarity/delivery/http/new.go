package http

import (
	"alpaca-ollama/internal/similarity"
	"alpaca-ollama/pkg/log"
)

type handler struct {
	l  log.Logger
	uc similarity.UseCase
}

// New creates a new HTTP handler for the similarity domain.
func New(l log.Logger, uc similarity.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
