package usecase

import (
	"context"
	"strings"

	"finpal-guardian/internal/threat"
	"finpal-guardian/pkg/gateway"

	"github.com/google/uuid"
)

// Harvest fetches scam news, extracts one pattern per article and saves the
// patterns. A news source without an API key yields an empty harvest.
func (uc *implUseCase) Harvest(ctx context.Context, input threat.HarvestInput) (threat.HarvestOutput, error) {
	empty := threat.HarvestOutput{Patterns: []threat.Pattern{}, Articles: []threat.Article{}}
	if uc.news == nil || !uc.news.Enabled() {
		uc.l.Infof(ctx, "%s: news source not configured, nothing to harvest", logPrefixHarvest)
		return empty, nil
	}

	query := firstNonEmpty(input.Query, defaultHarvestQuery)
	lang := firstNonEmpty(input.Language, defaultHarvestLanguage)
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultHarvestPageSize
	}

	items, err := uc.news.Everything(ctx, query, lang, pageSize)
	if err != nil {
		uc.l.Errorf(ctx, "%s: news.Everything: %v", logPrefixHarvest, err)
		return empty, err
	}

	out := empty
	for _, it := range items {
		a := threat.Article{Headline: it.Headline, RawText: it.RawText, Published: it.Published, URL: it.URL}
		out.Articles = append(out.Articles, a)

		if strings.TrimSpace(a.RawText) == "" && strings.TrimSpace(a.Headline) == "" {
			continue
		}

		p, err := uc.extractPattern(ctx, a)
		if err != nil {
			uc.l.Warnf(ctx, "%s: skip article %q: %v", logPrefixHarvest, a.URL, err)
			continue
		}
		out.Patterns = append(out.Patterns, p)
	}
	out.ArticlesFound = len(out.Articles)
	out.PatternsExtracted = len(out.Patterns)

	if len(out.Patterns) > 0 {
		if err := uc.store.Save(ctx, out.Patterns); err != nil {
			uc.l.Errorf(ctx, "%s: store.Save: %v", logPrefixHarvest, err)
			return empty, err
		}
		if uc.metrics != nil {
			uc.metrics.AddHarvested(len(out.Patterns))
		}
	}

	uc.l.Infof(ctx, "%s: %d articles, %d patterns", logPrefixHarvest, out.ArticlesFound, out.PatternsExtracted)
	return out, nil
}

func (uc *implUseCase) extractPattern(ctx context.Context, a threat.Article) (threat.Pattern, error) {
	var out extractOutput
	err := uc.gw.Generate(ctx, gateway.Call{
		Name:              StageExtractPattern,
		SystemInstruction: promptExtractPattern,
		User:              extractInput{Headline: a.Headline, RawText: a.RawText, URL: a.URL},
		Temperature:       stageTemperature,
	}, &out)
	if err != nil {
		return threat.Pattern{}, err
	}

	raw := threat.RawPattern{
		ID:                    uuid.NewString(),
		ScamName:              out.ScamName,
		Category:              out.Category,
		Channel:               out.Channel,
		ModusOperandi:         out.ModusOperandi,
		KeyPhrases:            out.KeyPhrases,
		RedFlags:              out.RedFlags,
		RecommendedUserAction: out.RecommendedUserAction,
		SourceURL:             a.URL,
	}
	if out.ExampleMessage != nil {
		raw.ExampleMessage = *out.ExampleMessage
	}
	return raw.Normalize()
}
