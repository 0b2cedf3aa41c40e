package http

import (
	"finpal-guardian/internal/guardian"
	"finpal-guardian/pkg/log"
)

type handler struct {
	l  log.Logger
	uc guardian.UseCase
}

// New creates a new HTTP handler for the guardian router.
func New(l log.Logger, uc guardian.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
