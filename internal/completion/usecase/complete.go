package usecase

import (
	"context"
	"errors"
	"fmt"

	"alpaca-ollama/internal/completion"
	"alpaca-ollama/pkg/ollama"
)

// Complete runs the prompt through the chat model.
func (uc *implUseCase) Complete(ctx context.Context, input completion.CompleteInput) (completion.CompleteOutput, error) {
	uc.l.Infof(ctx, "Complete: stream=%t prompt_len=%d", input.Stream, len(input.Prompt))

	res, err := uc.chat.Chat(ctx, ollama.ChatInput{
		Prompt: input.Prompt,
		Stream: input.Stream,
		JSON:   input.JSON,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Complete: chat failed: %v", err)
		if errors.Is(err, ollama.ErrMalformedRecord) {
			return completion.CompleteOutput{}, fmt.Errorf("%w: %w", completion.ErrMalformedCompletion, err)
		}
		return completion.CompleteOutput{}, fmt.Errorf("%w: %w", completion.ErrNoCompletion, err)
	}
	if res == nil {
		return completion.CompleteOutput{}, completion.ErrNoCompletion
	}

	return completion.CompleteOutput{
		Stream:  res.Stream,
		Record:  res.Record,
		Content: res.Content,
	}, nil
}
