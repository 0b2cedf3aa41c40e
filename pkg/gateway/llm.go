package gateway

import (
	"context"
	"encoding/json"
	"time"

	"finpal-guardian/pkg/llmprovider"
	"finpal-guardian/pkg/log"
)

const logPrefixGenerate = "pkg.gateway.Generate"

type llmGateway struct {
	llm     Generator
	l       log.Logger
	metrics Recorder
}

// New creates a Gateway backed by an LLM provider manager.
// metrics may be nil.
func New(llm Generator, l log.Logger, metrics Recorder) Gateway {
	return &llmGateway{llm: llm, l: l, metrics: metrics}
}

func (g *llmGateway) Generate(ctx context.Context, call Call, out any) error {
	start := time.Now()

	payload, err := json.Marshal(call.User)
	if err != nil {
		g.observe(call.Name, statusError, start)
		return &Error{Stage: call.Name, Reason: ReasonEncode, Err: err}
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: call.SystemInstruction}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: string(payload)}}},
		},
		Temperature: call.Temperature,
		JSONMode:    true,
	}

	resp, err := g.llm.GenerateContent(ctx, req)
	if err != nil {
		g.observe(call.Name, statusError, start)
		g.l.Warnf(ctx, "%s: stage=%s transport error: %v", logPrefixGenerate, call.Name, err)
		return &Error{Stage: call.Name, Reason: ReasonTransport, Err: err}
	}

	if err := Decode(call.Name, resp.Text(), out); err != nil {
		g.observe(call.Name, statusInvalid, start)
		g.l.Warnf(ctx, "%s: stage=%s provider=%s %v", logPrefixGenerate, call.Name, resp.ProviderName, err)
		return err
	}

	g.observe(call.Name, statusOK, start)
	g.l.Debugf(ctx, "%s: stage=%s provider=%s ok in %s", logPrefixGenerate, call.Name, resp.ProviderName, time.Since(start))
	return nil
}

func (g *llmGateway) observe(stage, status string, start time.Time) {
	if g.metrics == nil {
		return
	}
	g.metrics.ObserveGatewayCall(stage, status, time.Since(start))
}
