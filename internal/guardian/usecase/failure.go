package usecase

import (
	"errors"
	"fmt"

	"finpal-guardian/internal/guardian"
	"finpal-guardian/internal/intent"
	"finpal-guardian/internal/model"
	"finpal-guardian/pkg/gateway"
)

// failure builds the error envelope. The route is the resolved category,
// else a valid hint, else the configured fallback.
func (uc *implUseCase) failure(req guardian.InboundRequest, resolved model.Category, err error) guardian.Envelope {
	route := resolved
	if !route.IsValid() {
		route = uc.fallback
		if hint, perr := model.ParseCategory(req.RouteHint.String()); perr == nil {
			route = hint
		}
	}

	details := errorDetails(err)
	debug := map[string]any{guardian.DebugRoutingFailed: true}
	if attempted, ok := details["attempted_category"]; ok {
		debug[guardian.DebugAttemptedCategory] = attempted
	}

	return guardian.Envelope{
		FinalRoute: route,
		Error:      &guardian.ErrorInfo{Message: err.Error(), Details: details},
		DebugInfo:  debug,
	}
}

func errorDetails(err error) map[string]any {
	var (
		routingErr    *guardian.RoutingFailure
		classifyErr   *intent.ClassificationError
		validationErr *guardian.ValidationError
		gatewayErr    *gateway.Error
	)

	details := map[string]any{}
	switch {
	case errors.As(err, &routingErr):
		details["kind"] = kindRouting
		details["attempted_category"] = routingErr.Attempted
	case errors.As(err, &classifyErr):
		details["kind"] = kindClassification
		if classifyErr.Attempted != "" {
			details["attempted_category"] = classifyErr.Attempted
		}
		if errors.As(err, &gatewayErr) {
			details["stage"] = gatewayErr.Stage
			details["reason"] = gatewayErr.Reason
		}
	case errors.As(err, &validationErr):
		details["kind"] = kindValidation
		details["field"] = validationErr.Field
	case errors.As(err, &gatewayErr):
		details["kind"] = kindGateway
		details["stage"] = gatewayErr.Stage
		details["reason"] = gatewayErr.Reason
	case errors.Is(err, errInternal):
		details["kind"] = kindInternal
	default:
		details["kind"] = kindPipeline
	}
	return details
}

var errInternal = errors.New("internal error")

func panicError(r any) error {
	return fmt.Errorf("%w: %v", errInternal, r)
}
