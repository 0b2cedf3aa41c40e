package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	fencePattern = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.+?)\\s*```")
	validate     = validator.New()
)

// maxUnwrapDepth bounds nested string / raw_output unwrapping.
const maxUnwrapDepth = 3

// Decode turns raw model text into out. It strips code fences and prose,
// unwraps JSON string literals and {"raw_output": "..."} envelopes, reports
// {"error": ...} objects as model errors and validates struct targets.
func Decode(stage, raw string, out any) error {
	payload, err := extract(raw, 0)
	if err != nil {
		return &Error{Stage: stage, Reason: ReasonMalformed, Err: err}
	}

	if msg, ok := modelError(payload); ok {
		return &Error{Stage: stage, Reason: ReasonModelError, Err: errors.New(msg)}
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return &Error{Stage: stage, Reason: ReasonMalformed, Err: err}
	}

	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		if err := validate.Struct(out); err != nil {
			return &Error{Stage: stage, Reason: ReasonValidation, Err: err}
		}
	}

	return nil
}

func extract(raw string, depth int) ([]byte, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, errors.New("empty output")
	}

	// Fences only count when they wrap the document, not when they sit inside a string value.
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") && !strings.HasPrefix(text, `"`) {
		if m := fencePattern.FindStringSubmatch(text); len(m) > 1 {
			text = strings.TrimSpace(m[1])
		}
	}

	if strings.HasPrefix(text, `"`) && depth < maxUnwrapDepth {
		var inner string
		if err := json.Unmarshal([]byte(text), &inner); err == nil {
			return extract(inner, depth+1)
		}
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return nil, fmt.Errorf("no JSON document in output: %q", truncate(text, 80))
	}
	end := strings.LastIndexAny(text, "]}")
	if end < start {
		return nil, fmt.Errorf("unterminated JSON document in output: %q", truncate(text, 80))
	}
	payload := []byte(text[start : end+1])

	if depth < maxUnwrapDepth {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(payload, &wrapper); err == nil && len(wrapper) == 1 {
			if rawOut, ok := wrapper["raw_output"]; ok {
				var inner string
				if err := json.Unmarshal(rawOut, &inner); err == nil {
					return extract(inner, depth+1)
				}
			}
		}
	}

	if !json.Valid(payload) {
		return nil, fmt.Errorf("invalid JSON in output: %q", truncate(string(payload), 80))
	}
	return payload, nil
}

// modelError reports whether payload is an object carrying a non-null "error" key.
func modelError(payload []byte) (string, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err != nil {
		return "", false
	}
	rawErr, ok := obj["error"]
	if !ok || string(rawErr) == "null" {
		return "", false
	}

	var msg string
	if err := json.Unmarshal(rawErr, &msg); err == nil {
		return "model reported error: " + msg, true
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rawErr, &nested); err == nil && nested.Message != "" {
		return "model reported error: " + nested.Message, true
	}
	return "model reported error: " + string(rawErr), true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
