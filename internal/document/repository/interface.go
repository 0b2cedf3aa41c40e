package repository

import "context"

// Store resolves document identifiers to plain text.
// Unknown identifiers return document.ErrDocumentNotFound.
type Store interface {
	Get(ctx context.Context, id string) (string, error)
}

// Writer persists uploaded documents.
type Writer interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}
