// Package memory serves the policy corpus from memory, optionally loaded from YAML.
package memory

import (
	"context"
	"fmt"
	"strings"

	"finpal-guardian/internal/knowledge"
	"finpal-guardian/internal/knowledge/repository"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type implCorpus struct {
	docs []knowledge.RawDocument
}

// New returns a corpus over docs. The slice is copied.
func New(docs []knowledge.RawDocument) repository.Corpus {
	cp := make([]knowledge.RawDocument, len(docs))
	copy(cp, docs)
	return &implCorpus{docs: cp}
}

func (c *implCorpus) List(ctx context.Context) ([]knowledge.RawDocument, error) {
	out := make([]knowledge.RawDocument, len(c.docs))
	copy(out, c.docs)
	return out, nil
}

type corpusFile struct {
	Documents []knowledge.RawDocument `yaml:"documents"`
}

// LoadFile reads a YAML corpus of the form {documents: [{id, source, title, url, raw_text}]}.
// Every document needs an id, a title and text; ids must be unique.
func LoadFile(fsys afero.Fs, path string) ([]knowledge.RawDocument, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", knowledge.ErrInvalidCorpus, path, err)
	}

	seen := make(map[string]bool, len(f.Documents))
	for i, d := range f.Documents {
		if strings.TrimSpace(d.ID) == "" || strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.RawText) == "" {
			return nil, fmt.Errorf("%w: %s: document %d needs id, title and raw_text", knowledge.ErrInvalidCorpus, path, i)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("%w: %s: duplicate id %q", knowledge.ErrInvalidCorpus, path, d.ID)
		}
		seen[d.ID] = true
	}
	return f.Documents, nil
}
