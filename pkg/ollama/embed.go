package ollama

import (
	"context"
	"fmt"
	"time"
)

// Embed sends text to /api/embed and returns the embeddings of the first
// record. Any further records are discarded.
func (o *ollamaImpl) Embed(ctx context.Context, text string) (emb Embedding, err error) {
	started := time.Now()
	defer func() { o.observe(EndpointEmbed, started, err) }()

	s := o.openStream(ctx, EmbedPath, EmbedRequest{Model: o.embedModel, Input: text})
	defer s.Close()

	if !s.Next() {
		if sErr := s.Err(); sErr != nil {
			return nil, sErr
		}
		return nil, fmt.Errorf("%w: empty body from %s", ErrNoResponse, EmbedPath)
	}

	var rec EmbedRecord
	if err := s.Decode(&rec); err != nil {
		o.l.Errorf(ctx, "ollama.Embed: %v", err)
		return nil, err
	}

	if len(rec.Embeddings) == 0 {
		if msg := errorText(rec.Error); msg != "" {
			o.l.Warnf(ctx, "ollama.Embed: server error: %s", msg)
			return nil, fmt.Errorf("%w: %s", ErrMissingEmbeddings, msg)
		}
		return nil, ErrMissingEmbeddings
	}

	return rec.Embeddings, nil
}
