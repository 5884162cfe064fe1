package ollama

import (
	"time"

	"alpaca-ollama/pkg/log"
)

// newOllamaImpl creates a new Ollama implementation
func newOllamaImpl(cfg Config, l log.Logger) *ollamaImpl {
	return &ollamaImpl{
		l:           l,
		baseURL:     cfg.BaseURL,
		embedModel:  cfg.EmbedModel,
		promptModel: cfg.PromptModel,
		timeout:     cfg.Timeout,
		jsonOutput:  *cfg.JSONOutput,
		httpClient:  cfg.HTTPClient,
		observer:    cfg.Observer,
	}
}

func (o *ollamaImpl) observe(endpoint string, started time.Time, err error) {
	o.observer.ObserveRequest(endpoint, outcomeOf(err), time.Since(started))
}
