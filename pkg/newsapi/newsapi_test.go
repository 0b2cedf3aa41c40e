package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEverything(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/everything", r.URL.Path)
		assert.Equal(t, "upi scam fraud", r.URL.Query().Get("q"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		if r.URL.Query().Get("apiKey") != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"bad key"}`))
			return
		}
		w.Write([]byte(`{"status":"ok","articles":[
			{"title":"Fake KYC calls","content":"Callers ask for OTP","url":"https://example.com/a","publishedAt":"2026-01-02T03:04:05Z"},
			{"title":"QR refund trick","description":"Scan to receive","publishedAt":"garbage"}
		]}`))
	}))
	defer ts.Close()

	c := New(Config{APIKey: "good", BaseURL: ts.URL})
	articles, err := c.Everything(context.Background(), "upi scam fraud", "en", 10)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Callers ask for OTP", articles[0].RawText)
	assert.Equal(t, 2026, articles[0].Published.Year())
	assert.Equal(t, "Scan to receive", articles[1].RawText)
	assert.False(t, articles[1].Published.IsZero())

	bad := New(Config{APIKey: "nope", BaseURL: ts.URL})
	_, err = bad.Everything(context.Background(), "upi scam fraud", "en", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestEverything_Disabled(t *testing.T) {
	c := New(Config{})
	assert.False(t, c.Enabled())
	articles, err := c.Everything(context.Background(), "x", "en", 1)
	assert.NoError(t, err)
	assert.Empty(t, articles)
}
