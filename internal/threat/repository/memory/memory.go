// Package memory keeps scam patterns in memory, optionally loaded from YAML.
package memory

import (
	"context"
	"fmt"
	"sync"

	"finpal-guardian/internal/threat"
	"finpal-guardian/internal/threat/repository"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type implStore struct {
	mu       sync.RWMutex
	patterns []threat.Pattern
}

// New returns a store seeded with patterns.
func New(patterns []threat.Pattern) repository.Store {
	s := &implStore{}
	_ = s.Save(context.Background(), patterns)
	return s
}

func (s *implStore) List(ctx context.Context) ([]threat.Pattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]threat.Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out, nil
}

func (s *implStore) Save(ctx context.Context, patterns []threat.Pattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range patterns {
		replaced := false
		for i := range s.patterns {
			if s.patterns[i].ID == p.ID {
				s.patterns[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			s.patterns = append(s.patterns, p)
		}
	}
	return nil
}

type patternFile struct {
	Patterns []threat.RawPattern `yaml:"patterns"`
}

// LoadFile reads {patterns: [...]} from YAML. Records may use either shape.
func LoadFile(fsys afero.Fs, path string) ([]threat.Pattern, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read patterns %s: %w", path, err)
	}

	var f patternFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", threat.ErrInvalidPattern, path, err)
	}

	patterns, err := threat.NormalizeAll(f.Patterns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return patterns, nil
}

// Defaults returns the normalized built-in patterns.
func Defaults() []threat.Pattern {
	patterns, err := threat.NormalizeAll(DefaultPatterns())
	if err != nil {
		panic(err)
	}
	return patterns
}
