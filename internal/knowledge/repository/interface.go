package repository

import (
	"context"

	"finpal-guardian/internal/knowledge"
)

// Corpus returns policy documents in a stable order.
type Corpus interface {
	List(ctx context.Context) ([]knowledge.RawDocument, error)
}
