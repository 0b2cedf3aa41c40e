package knowledge

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Ask answers a regulation question grounded on the policy corpus.
	Ask(ctx context.Context, req Request) (Answer, error)
}
