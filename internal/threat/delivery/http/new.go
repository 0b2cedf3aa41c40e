package http

import (
	"finpal-guardian/internal/threat"
	"finpal-guardian/pkg/log"
)

type handler struct {
	l  log.Logger
	uc threat.UseCase
}

// New creates a new HTTP handler for scam patterns.
func New(l log.Logger, uc threat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
