package guardian

import (
	"finpal-guardian/internal/document"
	"finpal-guardian/internal/knowledge"
	"finpal-guardian/internal/model"
	"finpal-guardian/internal/threat"
)

// RationaleHint is the router reason for hinted requests.
const RationaleHint = "used explicit hint"

// Debug info keys.
const (
	DebugRouterReason      = "router_reason"
	DebugRoutingFailed     = "routing_failed"
	DebugAttemptedCategory = "attempted_category"
)

// InboundRequest is a user message entering the router. RouteHint may hold
// any raw value; unknown hints end in a routing failure.
type InboundRequest struct {
	RouteHint model.Category `json:"route_hint,omitempty"`
	Text      string         `json:"text,omitempty"`
	Language  string         `json:"language"`
	FileID    string         `json:"file_id,omitempty"`
	Metadata  map[string]any `json:"metadata"`
}

// Result is a pipeline result: document.Summary, knowledge.Answer or threat.Result.
type Result interface {
	Category() model.Category
}

var (
	_ Result = document.Summary{}
	_ Result = knowledge.Answer{}
	_ Result = threat.Result{}
)

// ErrorInfo describes why a request failed.
type ErrorInfo struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Envelope is the uniform router response. Data and Error are never both set.
type Envelope struct {
	FinalRoute model.Category `json:"final_route"`
	Data       Result         `json:"data,omitempty"`
	Error      *ErrorInfo     `json:"error,omitempty"`
	DebugInfo  map[string]any `json:"debug_info,omitempty"`
}

// Failed reports whether the envelope carries an error.
func (e Envelope) Failed() bool {
	return e.Error != nil
}
