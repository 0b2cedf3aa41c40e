// Package postgres stores scam patterns in the scam_patterns table.
package postgres

import (
	"context"
	"fmt"

	"finpal-guardian/internal/threat"
	"finpal-guardian/pkg/log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is a Postgres-backed pattern store.
type Store struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates the repository and makes sure the schema exists.
func New(ctx context.Context, pool *pgxpool.Pool, l log.Logger) (*Store, error) {
	if pool == nil {
		return nil, fmt.Errorf("threat/repository/postgres: pool is required")
	}
	s := &Store{pool: pool, l: l}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("threat/repository/postgres: ensure schema: %w", err)
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS scam_patterns (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT 'other',
	channel TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	trigger_phrases TEXT[] NOT NULL DEFAULT '{}',
	red_flags TEXT[] NOT NULL DEFAULT '{}',
	recommended_action TEXT NOT NULL DEFAULT '',
	example TEXT NOT NULL DEFAULT '',
	source_url TEXT NOT NULL DEFAULT '',
	position SERIAL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`)
	return err
}

// List returns patterns in insertion order.
func (s *Store) List(ctx context.Context) ([]threat.Pattern, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, name, category, channel, description, trigger_phrases, red_flags, recommended_action, example, source_url
FROM scam_patterns ORDER BY position, id`)
	if err != nil {
		s.l.Errorf(ctx, "threat/repository/postgres.List: %v", err)
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (threat.Pattern, error) {
		var p threat.Pattern
		err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Channel, &p.Description,
			&p.TriggerPhrases, &p.RedFlags, &p.RecommendedAction, &p.Example, &p.SourceURL)
		return p, err
	})
}

func (s *Store) Save(ctx context.Context, patterns []threat.Pattern) error {
	if len(patterns) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range patterns {
		batch.Queue(`
INSERT INTO scam_patterns (id, name, category, channel, description, trigger_phrases, red_flags, recommended_action, example, source_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name, category = EXCLUDED.category, channel = EXCLUDED.channel,
	description = EXCLUDED.description, trigger_phrases = EXCLUDED.trigger_phrases,
	red_flags = EXCLUDED.red_flags, recommended_action = EXCLUDED.recommended_action,
	example = EXCLUDED.example, source_url = EXCLUDED.source_url
`, p.ID, p.Name, p.Category, p.Channel, p.Description, nonNil(p.TriggerPhrases), nonNil(p.RedFlags),
			p.RecommendedAction, p.Example, p.SourceURL)
	}

	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		s.l.Errorf(ctx, "threat/repository/postgres.Save: %v", err)
		return err
	}
	return nil
}

// SeedIfEmpty saves patterns when the table has no rows.
func (s *Store) SeedIfEmpty(ctx context.Context, patterns []threat.Pattern) error {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM scam_patterns`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	s.l.Infof(ctx, "threat/repository/postgres.SeedIfEmpty: seeding %d patterns", len(patterns))
	return s.Save(ctx, patterns)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
