package intent

import (
	"context"
	"strings"

	"finpal-guardian/internal/model"
	"finpal-guardian/pkg/gateway"
)

// Classify determines the category of text. There is no fallback category:
// any failure is returned as *ClassificationError.
func (c *LLMClassifier) Classify(ctx context.Context, text string, metadata map[string]any) (Decision, error) {
	if metadata == nil {
		metadata = map[string]any{}
	}

	var out Output
	err := c.gw.Generate(ctx, gateway.Call{
		Name:              StageClassify,
		SystemInstruction: PromptClassifierSystem,
		User:              Input{Text: text, Metadata: metadata},
		Temperature:       ClassifierTemperature,
	}, &out)
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", LogPrefixClassify, err)
		return Decision{}, &ClassificationError{Err: err}
	}

	literal := out.Category
	if literal == "" {
		literal = out.Route
	}
	category, err := model.ParseCategory(literal)
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", LogPrefixClassify, err)
		return Decision{}, &ClassificationError{Attempted: literal, Err: err}
	}

	rationale := strings.TrimSpace(out.Rationale)
	if rationale == "" {
		rationale = strings.TrimSpace(out.Reason)
	}
	if rationale == "" {
		c.l.Warnf(ctx, "%s: %v", LogPrefixClassify, ErrMissingRationale)
		return Decision{}, &ClassificationError{Attempted: literal, Err: ErrMissingRationale}
	}

	c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, category)
	return Decision{Category: category, Rationale: rationale}, nil
}
