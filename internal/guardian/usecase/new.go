package usecase

import (
	"time"

	"finpal-guardian/internal/document"
	"finpal-guardian/internal/intent"
	"finpal-guardian/internal/knowledge"
	"finpal-guardian/internal/model"
	"finpal-guardian/internal/threat"
	"finpal-guardian/pkg/log"
)

// RequestRecorder observes routed requests.
type RequestRecorder interface {
	ObserveRequest(route, status string, d time.Duration)
}

// Config holds router settings.
type Config struct {
	// FallbackRoute is reported for failures that happen before a category is known.
	FallbackRoute model.Category
}

// Pipelines are the category pipelines the router dispatches to.
type Pipelines struct {
	Document  document.UseCase
	Knowledge knowledge.UseCase
	Threat    threat.UseCase
}

// implUseCase is the private implementation of guardian.UseCase.
type implUseCase struct {
	classifier intent.Classifier
	pipelines  Pipelines
	fallback   model.Category
	metrics    RequestRecorder
	l          log.Logger
}

// New creates a new guardian UseCase. metrics may be nil.
func New(cfg Config, classifier intent.Classifier, pipelines Pipelines, metrics RequestRecorder, l log.Logger) *implUseCase {
	fallback := cfg.FallbackRoute
	if !fallback.IsValid() {
		fallback = model.CategoryThreatTriage
	}
	return &implUseCase{
		classifier: classifier,
		pipelines:  pipelines,
		fallback:   fallback,
		metrics:    metrics,
		l:          l,
	}
}
