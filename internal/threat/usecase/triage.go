package usecase

import (
	"context"
	"strings"

	"finpal-guardian/internal/model"
	"finpal-guardian/internal/threat"
	"finpal-guardian/pkg/gateway"
)

// Triage runs Fast-Match then Explanation-Enrichment.
func (uc *implUseCase) Triage(ctx context.Context, req threat.Request) (threat.Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return threat.Result{}, threat.ErrEmptyText
	}
	lang := model.Language(req.Language)

	patterns, err := uc.store.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: store.List: %v", logPrefixTriage, err)
		return threat.Result{}, err
	}

	base := fastMatch(req.Text, lang, patterns)
	uc.l.Infof(ctx, "%s: is_scam=%t classification=%q matched=%v", logPrefixTriage, base.IsScam, base.Classification, base.MatchedPatterns)

	return uc.enrich(ctx, req, base), nil
}

// enrich may only change the narrative fields. Any failure returns base as is.
func (uc *implUseCase) enrich(ctx context.Context, req threat.Request, base threat.Result) threat.Result {
	var out enrichOutput
	err := uc.gw.Generate(ctx, gateway.Call{
		Name:              StageEnrich,
		SystemInstruction: promptEnrich,
		User: enrichInput{
			Result:   base,
			Text:     req.Text,
			Language: base.Language,
			Channel:  req.Channel,
			URL:      req.URL,
			UPIID:    req.UPIID,
		},
		Temperature: stageTemperature,
	}, &out)
	if err != nil {
		uc.l.Warnf(ctx, "%s: enrichment skipped: %v", logPrefixTriage, err)
		return base
	}

	result := base
	if w := strings.TrimSpace(out.ShortWarning); w != "" {
		result.ShortWarning = w
	}
	if expl := cleanLines(out.DetailedExplanation); len(expl) > 0 {
		result.DetailedExplanation = expl
	}
	if a := strings.TrimSpace(firstNonEmpty(out.WhatToDoNow, out.RecommendedAction)); a != "" {
		result.RecommendedAction = a
	}
	return result
}

func cleanLines(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
