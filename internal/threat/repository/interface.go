package repository

import (
	"context"

	"finpal-guardian/internal/threat"
)

// Store holds normalized scam patterns. List keeps insertion order, which
// decides the primary match.
type Store interface {
	List(ctx context.Context) ([]threat.Pattern, error)
	// Save inserts patterns, replacing any with the same id.
	Save(ctx context.Context, patterns []threat.Pattern) error
}
