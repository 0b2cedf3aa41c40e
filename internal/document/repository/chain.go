package repository

import (
	"context"
	"errors"

	"finpal-guardian/internal/document"
)

type chain []Store

// Chain asks each store in order and returns the first hit.
func Chain(stores ...Store) Store {
	return chain(stores)
}

func (c chain) Get(ctx context.Context, id string) (string, error) {
	for _, s := range c {
		text, err := s.Get(ctx, id)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, document.ErrDocumentNotFound) {
			return "", err
		}
	}
	return "", document.ErrDocumentNotFound
}
