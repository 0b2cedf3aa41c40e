package gateway

import (
	"errors"
	"fmt"
)

// ErrGateway matches every *Error via errors.Is.
var ErrGateway = errors.New("gateway error")

// Failure reasons carried by *Error.
const (
	ReasonEncode     = "encode_failed"
	ReasonTransport  = "transport_failed"
	ReasonModelError = "model_error"
	ReasonMalformed  = "malformed_output"
	ReasonValidation = "schema_validation"
)

// Error is the single error type produced by the gateway.
type Error struct {
	Stage  string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("gateway %s: %s", e.Stage, e.Reason)
	}
	return fmt.Sprintf("gateway %s: %s: %v", e.Stage, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrGateway
}
