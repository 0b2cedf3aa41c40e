package usecase

import (
	"context"

	"finpal-guardian/internal/threat"
)

func (uc *implUseCase) ListPatterns(ctx context.Context) ([]threat.Pattern, error) {
	patterns, err := uc.store.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.threat.usecase.ListPatterns: %v", err)
		return nil, err
	}
	if patterns == nil {
		patterns = []threat.Pattern{}
	}
	return patterns, nil
}
