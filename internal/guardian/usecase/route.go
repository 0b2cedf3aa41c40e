package usecase

import (
	"context"
	"strings"
	"time"

	"finpal-guardian/internal/guardian"
	"finpal-guardian/internal/model"
)

func (uc *implUseCase) Route(ctx context.Context, req guardian.InboundRequest) (env guardian.Envelope) {
	start := time.Now()
	var resolved model.Category

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: recovered panic: %v", logPrefixRoute, r)
			env = uc.failure(req, resolved, panicError(r))
		}

		status := statusOK
		if env.Failed() {
			status = statusError
		}
		if uc.metrics != nil {
			uc.metrics.ObserveRequest(env.FinalRoute.String(), status, time.Since(start))
		}
	}()

	category, rationale, err := uc.resolve(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "%s: resolve: %v", logPrefixRoute, err)
		return uc.failure(req, "", err)
	}
	resolved = category

	result, err := uc.dispatch(ctx, category, req)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", logPrefixRoute, category, err)
		return uc.failure(req, category, err)
	}

	uc.l.Infof(ctx, "%s: %s (%s)", logPrefixRoute, category, rationale)
	return guardian.Envelope{
		FinalRoute: category,
		Data:       result,
		DebugInfo:  map[string]any{guardian.DebugRouterReason: rationale},
	}
}

// resolve uses the hint when present and the classifier otherwise.
func (uc *implUseCase) resolve(ctx context.Context, req guardian.InboundRequest) (model.Category, string, error) {
	if hint := strings.TrimSpace(req.RouteHint.String()); hint != "" {
		category, err := model.ParseCategory(hint)
		if err != nil {
			return "", "", &guardian.RoutingFailure{Attempted: hint}
		}
		return category, guardian.RationaleHint, nil
	}

	decision, err := uc.classifier.Classify(ctx, req.Text, req.Metadata)
	if err != nil {
		return "", "", err
	}
	return decision.Category, decision.Rationale, nil
}

// dispatch runs exactly one pipeline.
func (uc *implUseCase) dispatch(ctx context.Context, category model.Category, req guardian.InboundRequest) (guardian.Result, error) {
	switch category {
	case model.CategoryDocumentRisk:
		sub, err := projectDocument(req)
		if err != nil {
			return nil, err
		}
		res, err := uc.pipelines.Document.Analyze(ctx, sub)
		if err != nil {
			return nil, err
		}
		return res, nil

	case model.CategoryKnowledgeQA:
		sub, err := projectKnowledge(req)
		if err != nil {
			return nil, err
		}
		res, err := uc.pipelines.Knowledge.Ask(ctx, sub)
		if err != nil {
			return nil, err
		}
		return res, nil

	case model.CategoryThreatTriage:
		sub, err := projectThreat(req)
		if err != nil {
			return nil, err
		}
		res, err := uc.pipelines.Threat.Triage(ctx, sub)
		if err != nil {
			return nil, err
		}
		return res, nil

	default:
		return nil, &guardian.RoutingFailure{Attempted: category.String()}
	}
}
