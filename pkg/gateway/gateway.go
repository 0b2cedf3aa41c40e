// Package gateway turns an LLM into a structured-output function: a system
// instruction and a JSON-encoded payload go in, a schema-validated value comes out.
package gateway

import (
	"context"
	"time"

	"finpal-guardian/pkg/llmprovider"
)

// Call describes one structured-output request.
type Call struct {
	// Name identifies the pipeline stage, e.g. "intent.classify".
	Name              string
	SystemInstruction string
	// User is JSON-encoded and sent as the user message.
	User        any
	Temperature float64
}

// Gateway produces a validated value for a Call. out must be a non-nil pointer.
// All failures are returned as *Error.
type Gateway interface {
	Generate(ctx context.Context, call Call, out any) error
}

// Generator is the network side of the gateway.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Recorder receives per-call metrics.
type Recorder interface {
	ObserveGatewayCall(stage, status string, d time.Duration)
}

const (
	statusOK      = "ok"
	statusError   = "error"
	statusInvalid = "invalid"
)
