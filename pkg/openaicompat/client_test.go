package openaicompat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{Provider: ProviderDeepSeek, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "deepseek-chat", c.Model())
	assert.Equal(t, "https://api.deepseek.com/v1", c.baseURL)

	_, err = New(Config{Provider: "unknown", APIKey: "k"})
	assert.Error(t, err)

	_, err = New(Config{Provider: ProviderQwen})
	assert.Error(t, err)
}

func TestGenerateContent(t *testing.T) {
	var got Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		if got.Messages[len(got.Messages)-1].Content == "fail" {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit"}}`))
			return
		}
		w.Write([]byte(`{"id":"1","model":"m","choices":[{"index":0,"message":{"role":"assistant","content":"{\"a\":1}"},"finish_reason":"stop"}],"usage":{"prompt_tokens":4,"completion_tokens":2,"total_tokens":6}}`))
	}))
	defer ts.Close()

	c, err := New(Config{Provider: ProviderOpenRouter, APIKey: "secret", BaseURL: ts.URL + "/", Model: "m"})
	require.NoError(t, err)

	resp, err := c.GenerateContent(context.Background(), &Request{
		Messages:       []Message{{Role: "system", Content: "json only"}, {Role: "user", Content: "hi"}},
		ResponseFormat: &ResponseFormat{Type: ResponseFormatJSON},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, resp.Choices[0].Message.Content)
	assert.Equal(t, 6, resp.Usage.TotalTokens)
	assert.Equal(t, "m", got.Model)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, ResponseFormatJSON, got.ResponseFormat.Type)

	_, err = c.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: "user", Content: "fail"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slow down")
}
