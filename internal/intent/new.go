package intent

import (
	"context"

	"finpal-guardian/pkg/gateway"
	"finpal-guardian/pkg/log"
)

// Classifier resolves the category of a free-form message.
type Classifier interface {
	Classify(ctx context.Context, text string, metadata map[string]any) (Decision, error)
}

// LLMClassifier classifies intent with a single gateway call.
type LLMClassifier struct {
	gw gateway.Gateway
	l  log.Logger
}

var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier
func New(gw gateway.Gateway, l log.Logger) *LLMClassifier {
	return &LLMClassifier{
		gw: gw,
		l:  l,
	}
}
