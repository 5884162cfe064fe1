package http

import (
	"encoding/json"

	"alpaca-ollama/internal/completion"
)

// --- Request DTOs ---

type promptReq struct {
	Prompt string `json:"prompt" binding:"required"`
	Stream bool   `json:"stream"`
	JSON   *bool  `json:"json"`
}

func (r promptReq) toInput() completion.CompleteInput {
	return completion.CompleteInput{
		Prompt: r.Prompt,
		Stream: r.Stream,
		JSON:   r.JSON,
	}
}

// --- Response DTOs ---

type streamResp struct {
	Content string `json:"content"`
}

// newPromptResp returns the server record untouched for non-streaming calls
// and {content} for streaming ones.
func (h *handler) newPromptResp(out completion.CompleteOutput) any {
	if out.Stream {
		return streamResp{Content: out.Content}
	}
	return json.RawMessage(out.Record)
}
