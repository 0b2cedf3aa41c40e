package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decision struct {
	Category  string `json:"category" validate:"required"`
	Rationale string `json:"rationale"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want decision
	}{
		{"plain", `{"category":"A","rationale":"r"}`, decision{"A", "r"}},
		{"fenced json", "```json\n{\"category\":\"A\"}\n```", decision{Category: "A"}},
		{"bare fence", "```\n{\"category\":\"B\"}\n```", decision{Category: "B"}},
		{"prose around", `Sure! {"category":"C"} Hope it helps.`, decision{Category: "C"}},
		{"string literal", `"{\"category\":\"D\"}"`, decision{Category: "D"}},
		{"raw_output wrapper", `{"raw_output":"{\"category\":\"E\"}"}`, decision{Category: "E"}},
		{"raw_output fenced", "{\"raw_output\":\"```json\\n{\\\"category\\\":\\\"F\\\"}\\n```\"}", decision{Category: "F"}},
		{"null error key", `{"category":"G","error":null}`, decision{Category: "G"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got decision
			require.NoError(t, Decode("test.stage", tc.raw, &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason string
		text   string
	}{
		{"empty", "   ", ReasonMalformed, "empty"},
		{"no json", "I cannot help with that", ReasonMalformed, "no JSON"},
		{"broken json", `{"category": "A"`, ReasonMalformed, ""},
		{"error string", `{"error":"boom"}`, ReasonModelError, "boom"},
		{"error object", `{"error":{"message":"quota exceeded"}}`, ReasonModelError, "quota exceeded"},
		{"missing required", `{"rationale":"r"}`, ReasonValidation, "Category"},
		{"wrong type", `{"category": 5}`, ReasonMalformed, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got decision
			err := Decode("test.stage", tc.raw, &got)
			require.Error(t, err)

			var gwErr *Error
			require.True(t, errors.As(err, &gwErr))
			assert.Equal(t, "test.stage", gwErr.Stage)
			assert.Equal(t, tc.reason, gwErr.Reason)
			assert.True(t, errors.Is(err, ErrGateway))
			if tc.text != "" {
				assert.Contains(t, err.Error(), tc.text)
			}
		})
	}
}

func TestDecode_NonStructTarget(t *testing.T) {
	var got []string
	require.NoError(t, Decode("s", `["a","b"]`, &got))
	assert.Equal(t, []string{"a", "b"}, got)

	var m map[string]any
	require.NoError(t, Decode("s", `{"x":1}`, &m))
	assert.Equal(t, float64(1), m["x"])
}
