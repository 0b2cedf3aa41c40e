package usecase

import (
	"context"
	"strings"

	"finpal-guardian/internal/document"
	"finpal-guardian/internal/model"
	"finpal-guardian/pkg/gateway"
)

// Analyze runs the four stages in order. Any stage failure aborts the pipeline.
func (uc *implUseCase) Analyze(ctx context.Context, req document.Request) (document.Summary, error) {
	lang := model.Language(req.Language)

	raw, err := uc.resolve(ctx, req.Source)
	if err != nil {
		uc.l.Warnf(ctx, "%s: resolve: %v", logPrefixAnalyze, err)
		return document.Summary{}, err
	}

	extracted, err := uc.extract(ctx, raw, lang)
	if err != nil {
		return document.Summary{}, err
	}

	risk, err := uc.score(ctx, extracted, lang)
	if err != nil {
		return document.Summary{}, err
	}

	summary, err := uc.narrate(ctx, extracted, risk, lang)
	if err != nil {
		return document.Summary{}, err
	}

	uc.l.Infof(ctx, "%s: product=%s risk=%.2f (%s)", logPrefixAnalyze, extracted.ProductType, risk.RiskScore, risk.OverallRiskLevel)
	return summary, nil
}

// resolve prefers literal text; otherwise the file id is looked up in the store.
func (uc *implUseCase) resolve(ctx context.Context, src document.Source) (string, error) {
	if text := strings.TrimSpace(src.TextContent); text != "" {
		return src.TextContent, nil
	}

	id := strings.TrimSpace(src.FileID)
	if id == "" || uc.store == nil {
		return "", document.ErrEmptyDocument
	}

	text, err := uc.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", document.ErrEmptyDocument
	}
	return text, nil
}

func (uc *implUseCase) extract(ctx context.Context, raw, lang string) (document.ExtractedData, error) {
	var out document.ExtractedData
	err := uc.gw.Generate(ctx, gateway.Call{
		Name:              StageExtract,
		SystemInstruction: promptExtract,
		User:              extractInput{RawText: raw, Language: lang},
		Temperature:       stageTemperature,
	}, &out)
	if err != nil {
		return document.ExtractedData{}, err
	}

	out.ProductType = normalizeProductType(out.ProductType)
	out.ImportantClauses = normalizeClauses(out.ImportantClauses)
	if out.OtherCharges == nil {
		out.OtherCharges = []string{}
	}
	return out, nil
}

func (uc *implUseCase) score(ctx context.Context, extracted document.ExtractedData, lang string) (document.RiskData, error) {
	var out scoreOutput
	err := uc.gw.Generate(ctx, gateway.Call{
		Name:              StageScore,
		SystemInstruction: promptScore,
		User:              scoreInput{Extracted: extracted, Language: lang},
		Temperature:       stageTemperature,
	}, &out)
	if err != nil {
		return document.RiskData{}, err
	}

	return document.RiskData{
		RiskScore:        *out.RiskScore,
		OverallRiskLevel: strings.ToLower(strings.TrimSpace(out.OverallRiskLevel)),
		FlaggedClauses:   normalizeClauses(out.FlaggedClauses),
		Explanation:      out.Explanation,
	}, nil
}

// narrate only contributes the narrative; extraction and risk come from the earlier stages.
func (uc *implUseCase) narrate(ctx context.Context, extracted document.ExtractedData, risk document.RiskData, lang string) (document.Summary, error) {
	var out narrateOutput
	err := uc.gw.Generate(ctx, gateway.Call{
		Name:              StageNarrate,
		SystemInstruction: promptNarrate,
		User:              narrateInput{Extracted: extracted, Risk: risk, Language: lang},
		Temperature:       stageTemperature,
	}, &out)
	if err != nil {
		return document.Summary{}, err
	}

	return document.Summary{
		Language:                  lang,
		Extracted:                 extracted,
		Risk:                      risk,
		PlainSummary:              out.PlainSummary,
		KeyNumbers:                nonNil(out.KeyNumbers),
		RiskExplanation:           nonNil(out.RiskExplanation),
		SuggestedQuestionsForBank: nonNil(out.SuggestedQuestionsForBank),
	}, nil
}
