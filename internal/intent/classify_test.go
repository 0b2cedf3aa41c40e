package intent

import (
	"context"
	"errors"
	"testing"

	"finpal-guardian/internal/model"
	"finpal-guardian/pkg/gateway"
	"finpal-guardian/pkg/gateway/gatewaytest"
	"finpal-guardian/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      model.Category
		rationale string
	}{
		{"category", `{"category":"THREAT_TRIAGE","rationale":"asks for OTP"}`, model.CategoryThreatTriage, "asks for OTP"},
		{"legacy keys", `{"route":"LOAN_DOC","reason":"loan contract"}`, model.CategoryDocumentRisk, "loan contract"},
		{"lowercase", "```json\n{\"category\":\"knowledge_qa\",\"rationale\":\" asks about RBI rules \"}\n```", model.CategoryKnowledgeQA, "asks about RBI rules"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &gatewaytest.Stub{Responses: map[string]string{StageClassify: tc.raw}}
			c := New(stub, log.NewNop())

			got, err := c.Classify(context.Background(), "hello", map[string]any{"channel": "sms"})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Category)
			assert.Equal(t, tc.rationale, got.Rationale)
			assert.Equal(t, 1, stub.CallCount(StageClassify))

			calls := stub.Calls()
			in, ok := calls[0].User.(Input)
			require.True(t, ok)
			assert.Equal(t, "hello", in.Text)
			assert.Equal(t, "sms", in.Metadata["channel"])
			assert.Equal(t, PromptClassifierSystem, calls[0].SystemInstruction)
		})
	}
}

func TestClassify_Failures(t *testing.T) {
	tests := []struct {
		name      string
		stub      *gatewaytest.Stub
		attempted string
	}{
		{"gateway error", &gatewaytest.Stub{Errors: map[string]error{StageClassify: errors.New("unreachable")}}, ""},
		{"model error", &gatewaytest.Stub{Responses: map[string]string{StageClassify: `{"error":"boom"}`}}, ""},
		{"missing category", &gatewaytest.Stub{Responses: map[string]string{StageClassify: `{"rationale":"x"}`}}, ""},
		{"unknown category", &gatewaytest.Stub{Responses: map[string]string{StageClassify: `{"category":"SMALL_TALK","rationale":"chit-chat"}`}}, "SMALL_TALK"},
		{"missing rationale", &gatewaytest.Stub{Responses: map[string]string{StageClassify: `{"category":"KNOWLEDGE_QA"}`}}, ""},
		{"blank rationale", &gatewaytest.Stub{Responses: map[string]string{StageClassify: `{"category":"THREAT_TRIAGE","rationale":"   "}`}}, "THREAT_TRIAGE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.stub, log.NewNop())
			_, err := c.Classify(context.Background(), "hello", nil)
			require.Error(t, err)

			var cErr *ClassificationError
			require.True(t, errors.As(err, &cErr))
			assert.Equal(t, tc.attempted, cErr.Attempted)
			if tc.attempted == "" {
				assert.True(t, errors.Is(err, gateway.ErrGateway))
			}
		})
	}
}

func TestClassify_BlankRationaleRejected(t *testing.T) {
	stub := &gatewaytest.Stub{Responses: map[string]string{StageClassify: `{"category":"THREAT_TRIAGE","reason":" "}`}}

	got, err := New(stub, log.NewNop()).Classify(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, ErrMissingRationale)
	assert.Empty(t, got.Category)
}
