package similarity

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Rank embeds the query and every candidate, scores each candidate by dot
	// product against the query, and picks the best one.
	Rank(ctx context.Context, input RankInput) (Report, error)
}

// Observer receives one notification per candidate comparison.
type Observer interface {
	ObserveComparison(outcome string)
}

// NopObserver discards observations.
type NopObserver struct{}

func (NopObserver) ObserveComparison(string) {}
