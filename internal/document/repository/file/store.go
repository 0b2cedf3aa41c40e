// Package file stores uploaded documents on a filesystem.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"finpal-guardian/internal/document"
	"finpal-guardian/pkg/log"
	"finpal-guardian/pkg/textextract"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// MaxFileSize bounds uploads and reads.
const MaxFileSize = 10 << 20

type implStore struct {
	fs  afero.Fs
	dir string
	l   log.Logger
}

// Store reads and writes documents under one directory.
type Store interface {
	Get(ctx context.Context, id string) (string, error)
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// New creates a Store rooted at dir on fsys. The directory is created if missing.
func New(fsys afero.Fs, dir string, l log.Logger) (Store, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("document store: create %s: %w", dir, err)
	}
	return &implStore{fs: fsys, dir: dir, l: l}, nil
}

// Get resolves id to text. An id without extension is tried as .txt, .md and .pdf in that order.
func (s *implStore) Get(ctx context.Context, id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}

	candidates := []string{id}
	if filepath.Ext(id) == "" {
		candidates = candidates[:0]
		for _, ext := range textextract.SupportedExtensions {
			candidates = append(candidates, id+ext)
		}
	}

	for _, name := range candidates {
		full := filepath.Join(s.dir, name)
		info, err := s.fs.Stat(full)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("document store: stat %s: %w", name, err)
		}
		if info.Size() > MaxFileSize {
			return "", document.ErrDocumentTooLarge
		}

		data, err := afero.ReadFile(s.fs, full)
		if err != nil {
			return "", fmt.Errorf("document store: read %s: %w", name, err)
		}
		text, err := textextract.Extract(name, data)
		if errors.Is(err, textextract.ErrUnsupportedFormat) {
			return "", document.ErrUnsupportedDocument
		}
		if err != nil {
			s.l.Warnf(ctx, "internal.document.repository.file.Get: extract %s: %v", name, err)
			return "", fmt.Errorf("document store: extract %s: %w", name, err)
		}
		return text, nil
	}

	return "", document.ErrDocumentNotFound
}

// Save writes data under a fresh identifier keeping the original extension.
func (s *implStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	supported := false
	for _, e := range textextract.SupportedExtensions {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		return "", document.ErrUnsupportedDocument
	}
	if len(data) > MaxFileSize {
		return "", document.ErrDocumentTooLarge
	}

	id := uuid.NewString()
	if err := afero.WriteFile(s.fs, filepath.Join(s.dir, id+ext), data, 0o644); err != nil {
		return "", fmt.Errorf("document store: write: %w", err)
	}
	s.l.Infof(ctx, "internal.document.repository.file.Save: stored %s (%d bytes)", id+ext, len(data))
	return id, nil
}

// Identifiers are single path elements; anything that could escape dir is rejected.
func validateID(id string) error {
	if id == "" || id == "." || id == ".." {
		return document.ErrInvalidFileID
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") || path.IsAbs(id) {
		return document.ErrInvalidFileID
	}
	return nil
}
