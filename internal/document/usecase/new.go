package usecase

import (
	"finpal-guardian/internal/document/repository"
	"finpal-guardian/pkg/gateway"
	"finpal-guardian/pkg/log"
)

// implUseCase is the private implementation of document.UseCase.
type implUseCase struct {
	gw     gateway.Gateway
	store  repository.Store
	writer repository.Writer
	l      log.Logger
}

// New creates a new document UseCase. writer may be nil, which disables uploads.
func New(gw gateway.Gateway, store repository.Store, writer repository.Writer, l log.Logger) *implUseCase {
	return &implUseCase{
		gw:     gw,
		store:  store,
		writer: writer,
		l:      l,
	}
}
