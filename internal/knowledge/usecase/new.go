package usecase

import (
	"finpal-guardian/internal/knowledge/repository"
	"finpal-guardian/pkg/gateway"
	"finpal-guardian/pkg/log"
)

// implUseCase is the private implementation of knowledge.UseCase.
type implUseCase struct {
	gw     gateway.Gateway
	corpus repository.Corpus
	l      log.Logger
}

// New creates a new knowledge UseCase.
func New(gw gateway.Gateway, corpus repository.Corpus, l log.Logger) *implUseCase {
	return &implUseCase{
		gw:     gw,
		corpus: corpus,
		l:      l,
	}
}
