package usecase

import (
	"context"

	"finpal-guardian/internal/threat/repository"
	"finpal-guardian/pkg/gateway"
	"finpal-guardian/pkg/log"
	"finpal-guardian/pkg/newsapi"
)

// NewsSource is the news search used by Harvest.
type NewsSource interface {
	Enabled() bool
	Everything(ctx context.Context, query, language string, pageSize int) ([]newsapi.Article, error)
}

// HarvestRecorder counts stored patterns.
type HarvestRecorder interface {
	AddHarvested(n int)
}

// implUseCase is the private implementation of threat.UseCase.
type implUseCase struct {
	gw      gateway.Gateway
	store   repository.Store
	news    NewsSource
	metrics HarvestRecorder
	l       log.Logger
}

// New creates a new threat UseCase. news and metrics may be nil.
func New(gw gateway.Gateway, store repository.Store, news NewsSource, metrics HarvestRecorder, l log.Logger) *implUseCase {
	return &implUseCase{
		gw:      gw,
		store:   store,
		news:    news,
		metrics: metrics,
		l:       l,
	}
}
