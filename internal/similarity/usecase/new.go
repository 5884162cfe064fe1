package usecase

import (
	"context"

	"alpaca-ollama/internal/similarity"
	pkgLog "alpaca-ollama/pkg/log"
	"alpaca-ollama/pkg/ollama"
)

// Embedder turns one text into one embedding. ollama.IOllama satisfies it.
type Embedder interface {
	Embed(ctx context.Context, text string) (ollama.Embedding, error)
}

type implUseCase struct {
	l              pkgLog.Logger
	embedder       Embedder
	maxConcurrency int
	observer       similarity.Observer
}

// New creates a new similarity UseCase instance.
// maxConcurrency <= 0 lets every candidate request start at once.
func New(
	l pkgLog.Logger,
	embedder Embedder,
	maxConcurrency int,
	observer similarity.Observer,
) *implUseCase {
	if observer == nil {
		observer = similarity.NopObserver{}
	}
	return &implUseCase{
		l:              l,
		embedder:       embedder,
		maxConcurrency: maxConcurrency,
		observer:       observer,
	}
}
