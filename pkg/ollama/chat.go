package ollama

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Chat sends a single user message to /api/chat.
//
// Non-streaming calls return the first record as-is, whatever its shape.
// Streaming calls read the body to the end and concatenate every
// message.content delta, counting a missing or non-string content as "". If
// the connection drops after at least one delta, the partial content is
// returned and a warning is logged.
func (o *ollamaImpl) Chat(ctx context.Context, input ChatInput) (res *ChatResult, err error) {
	started := time.Now()
	defer func() { o.observe(EndpointChat, started, err) }()

	jsonOutput := o.jsonOutput
	if input.JSON != nil {
		jsonOutput = *input.JSON
	}

	s := o.openStream(ctx, ChatPath, ChatRequest{
		Model:    o.promptModel,
		Messages: []ChatMessage{{Role: roleUser, Content: input.Prompt}},
		Stream:   input.Stream,
		Raw:      true,
		JSON:     jsonOutput,
	})
	defer s.Close()

	if input.Stream {
		return o.readStreamingChat(ctx, s)
	}
	return o.readSingleChat(ctx, s)
}

func (o *ollamaImpl) readSingleChat(ctx context.Context, s *Stream) (*ChatResult, error) {
	if !s.Next() {
		if err := s.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty body from %s", ErrNoResponse, ChatPath)
	}

	rec := parseChatRecord(s.Record())
	if msg := errorText(rec.Error); msg != "" {
		o.l.Warnf(ctx, "ollama.Chat: server error: %s", msg)
	}

	return &ChatResult{
		Record:  s.Record(),
		Content: rec.Content(),
		Records: 1,
	}, nil
}

func (o *ollamaImpl) readStreamingChat(ctx context.Context, s *Stream) (*ChatResult, error) {
	var sb strings.Builder
	for s.Next() {
		rec := parseChatRecord(s.Record())
		if msg := errorText(rec.Error); msg != "" {
			o.l.Warnf(ctx, "ollama.Chat: server error: %s", msg)
		}
		sb.WriteString(rec.Content())
	}

	if err := s.Err(); err != nil {
		if s.Count() == 0 || !errors.Is(err, ErrNoResponse) {
			return nil, err
		}
		o.l.Warnf(ctx, "ollama.Chat: stream ended early after %d records, returning partial content: %v", s.Count(), err)
	}

	if s.Count() == 0 {
		return nil, fmt.Errorf("%w: empty body from %s", ErrNoResponse, ChatPath)
	}

	return &ChatResult{
		Stream:  true,
		Content: sb.String(),
		Records: s.Count(),
	}, nil
}
