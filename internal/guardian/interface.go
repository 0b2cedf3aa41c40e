package guardian

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Route picks a category, runs its pipeline and wraps the outcome.
	// It never fails: every error ends up in the envelope.
	Route(ctx context.Context, req InboundRequest) Envelope
}
