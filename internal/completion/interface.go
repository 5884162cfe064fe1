package completion

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Complete(ctx context.Context, input CompleteInput) (CompleteOutput, error)
}
