package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"alpaca-ollama/internal/similarity"
	"alpaca-ollama/pkg/ollama"
)

// Rank scores every candidate against the query.
func (uc *implUseCase) Rank(ctx context.Context, input similarity.RankInput) (similarity.Report, error) {
	if input.Query == "" || len(input.Candidates) == 0 {
		return similarity.Report{}, similarity.ErrMissingInput
	}

	started := time.Now()
	uc.l.Infof(ctx, "Rank: query=%q candidates=%d", input.Query, len(input.Candidates))

	queryEmb, err := uc.embedder.Embed(ctx, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "Rank: failed to embed query: %v", err)
		return similarity.Report{}, fmt.Errorf("%w: %w", similarity.ErrQueryEmbedding, err)
	}
	if len(queryEmb) == 0 {
		uc.l.Errorf(ctx, "Rank: query embedding is empty")
		return similarity.Report{}, similarity.ErrQueryEmbedding
	}

	embeddings, errs := uc.embedCandidates(ctx, input.Candidates)

	report := similarity.Report{
		Query:       input.Query,
		Comparisons: make([]similarity.ComparisonResult, len(input.Candidates)),
	}

	bestIdx := -1
	bestScore := math.Inf(-1)
	for i, text := range input.Candidates {
		report.Comparisons[i] = similarity.ComparisonResult{Index: i, Text: text}

		if errs[i] != nil {
			uc.l.Warnf(ctx, "Rank: candidate %d has no embedding: %v", i, errs[i])
			uc.observer.ObserveComparison(similarity.OutcomeFailed)
			continue
		}

		score, err := dotProduct(queryEmb, embeddings[i])
		if err != nil {
			uc.l.Errorf(ctx, "Rank: candidate %d: %v", i, err)
			uc.observer.ObserveComparison(similarity.OutcomeMismatch)
			continue
		}

		report.Comparisons[i].Score = &score
		uc.observer.ObserveComparison(similarity.OutcomeScored)

		// strict > keeps the earliest candidate on ties
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 {
		best := report.Comparisons[bestIdx]
		report.Best = &best
	}

	uc.l.Infof(ctx, "Rank: done in %s, best=%d", time.Since(started), bestIdx)
	return report, nil
}

// embedCandidates embeds every candidate concurrently. Slot i of both
// returned slices belongs to candidates[i] regardless of completion order.
func (uc *implUseCase) embedCandidates(ctx context.Context, candidates []string) ([]ollama.Embedding, []error) {
	embeddings := make([]ollama.Embedding, len(candidates))
	errs := make([]error, len(candidates))

	var g errgroup.Group
	if uc.maxConcurrency > 0 {
		g.SetLimit(uc.maxConcurrency)
	}

	for i, text := range candidates {
		g.Go(func() error {
			emb, err := uc.embedder.Embed(ctx, text)
			if err == nil && len(emb) == 0 {
				err = errors.New("empty embedding")
			}
			embeddings[i], errs[i] = emb, err
			// never fail the group: one bad candidate must not cancel the rest
			return nil
		})
	}
	_ = g.Wait()

	return embeddings, errs
}
