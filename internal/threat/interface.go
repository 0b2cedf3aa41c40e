package threat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Triage matches a suspicious message against known scam patterns.
	Triage(ctx context.Context, req Request) (Result, error)
	ListPatterns(ctx context.Context) ([]Pattern, error)
	// Harvest pulls scam news and stores one extracted pattern per article.
	Harvest(ctx context.Context, input HarvestInput) (HarvestOutput, error)
}
