// Package postgres stores the policy corpus in the policy_docs table.
package postgres

import (
	"context"
	"fmt"

	"finpal-guardian/internal/knowledge"
	"finpal-guardian/pkg/log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Corpus is a Postgres-backed policy corpus.
type Corpus struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates the repository and makes sure the schema exists.
func New(ctx context.Context, pool *pgxpool.Pool, l log.Logger) (*Corpus, error) {
	if pool == nil {
		return nil, fmt.Errorf("knowledge/repository/postgres: pool is required")
	}
	r := &Corpus{pool: pool, l: l}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("knowledge/repository/postgres: ensure schema: %w", err)
	}
	return r, nil
}

func (r *Corpus) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS policy_docs (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL,
	url TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL,
	position SERIAL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`)
	return err
}

// List returns documents in insertion order.
func (r *Corpus) List(ctx context.Context) ([]knowledge.RawDocument, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, source, title, url, content FROM policy_docs ORDER BY position, id`)
	if err != nil {
		r.l.Errorf(ctx, "knowledge/repository/postgres.List: %v", err)
		return nil, err
	}
	defer rows.Close()

	var docs []knowledge.RawDocument
	for rows.Next() {
		var d knowledge.RawDocument
		if err := rows.Scan(&d.ID, &d.Source, &d.Title, &d.URL, &d.RawText); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Upsert inserts or replaces documents by id.
func (r *Corpus) Upsert(ctx context.Context, docs []knowledge.RawDocument) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, d := range docs {
		_, err := tx.Exec(ctx, `
INSERT INTO policy_docs (id, source, title, url, content)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET source = EXCLUDED.source, title = EXCLUDED.title, url = EXCLUDED.url, content = EXCLUDED.content
`, d.ID, d.Source, d.Title, d.URL, d.RawText)
		if err != nil {
			r.l.Errorf(ctx, "knowledge/repository/postgres.Upsert %s: %v", d.ID, err)
			return err
		}
	}
	return tx.Commit(ctx)
}

// SeedIfEmpty writes docs when the table has no rows.
func (r *Corpus) SeedIfEmpty(ctx context.Context, docs []knowledge.RawDocument) error {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM policy_docs`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	r.l.Infof(ctx, "knowledge/repository/postgres.SeedIfEmpty: seeding %d documents", len(docs))
	return r.Upsert(ctx, docs)
}
