package log_test

import (
	"context"
	"testing"

	"finpal-guardian/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-42")
	if got := log.RequestID(ctx); got != "req-42" {
		t.Errorf("expected req-42, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInit_UnknownLevelDoesNotPanic(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "verbose", Mode: "development", Encoding: "console"})
	l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")
	log.NewNop().Error(context.Background(), "discarded")
}
