package http

import (
	"finpal-guardian/internal/document"
	"finpal-guardian/pkg/log"
)

type handler struct {
	l  log.Logger
	uc document.UseCase
}

// New creates a new HTTP handler for document uploads.
func New(l log.Logger, uc document.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
