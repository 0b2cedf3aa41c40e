// Package gatewaytest provides a scripted gateway.Gateway for tests.
package gatewaytest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"finpal-guardian/pkg/gateway"
)

// Stub answers calls by stage name. Lookup order: Func, Errors, Responses, Fallback.
// Raw responses go through gateway.Decode, so fences, wrappers and
// {"error": ...} objects behave exactly as with a real model.
type Stub struct {
	mu sync.Mutex

	Func      func(call gateway.Call) (string, error)
	Responses map[string]string
	Errors    map[string]error
	Fallback  string

	calls []gateway.Call
}

var _ gateway.Gateway = (*Stub)(nil)

// Generate implements gateway.Gateway.
func (s *Stub) Generate(ctx context.Context, call gateway.Call, out any) error {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	fn := s.Func
	callErr := s.Errors[call.Name]
	raw, ok := s.Responses[call.Name]
	fallback := s.Fallback
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return &gateway.Error{Stage: call.Name, Reason: gateway.ReasonTransport, Err: err}
	}

	if fn != nil {
		var err error
		raw, err = fn(call)
		if err != nil {
			return asGatewayError(call.Name, err)
		}
		return gateway.Decode(call.Name, raw, out)
	}

	if callErr != nil {
		return asGatewayError(call.Name, callErr)
	}
	if !ok {
		if fallback == "" {
			return &gateway.Error{Stage: call.Name, Reason: gateway.ReasonTransport, Err: fmt.Errorf("no scripted response")}
		}
		raw = fallback
	}
	return gateway.Decode(call.Name, raw, out)
}

// Calls returns a copy of every call received so far.
func (s *Stub) Calls() []gateway.Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gateway.Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns how many calls used the given stage name.
func (s *Stub) CallCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls.
func (s *Stub) Reset() {
	s.mu.Lock()
	s.calls = nil
	s.mu.Unlock()
}

func asGatewayError(stage string, err error) error {
	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		return gwErr
	}
	return &gateway.Error{Stage: stage, Reason: gateway.ReasonTransport, Err: err}
}
