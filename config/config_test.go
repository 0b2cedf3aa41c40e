package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret-key")
	t.Setenv("NEWS_API_KEY", "news-key")

	cfg, err := LoadFile(writeConfig(t, `
http_server:
  port: 9090
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${TEST_GEMINI_KEY}
      model: gemini-2.5-flash
      timeout: 20s
guardian:
  fallback_route: KNOWLEDGE_QA
threat:
  patterns_file: ./patterns.yaml
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "debug", cfg.HTTPServer.Mode)
	assert.Equal(t, "KNOWLEDGE_QA", cfg.Guardian.FallbackRoute)
	assert.Equal(t, "./patterns.yaml", cfg.Threat.PatternsFile)
	assert.Equal(t, "./data/documents", cfg.Document.StoreDir)
	assert.Equal(t, "news-key", cfg.NewsAPI.APIKey)
	assert.Equal(t, "60s", cfg.LLM.MaxTotalTimeout)
	assert.True(t, cfg.RateLimit.Enabled)

	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "secret-key", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, "20s", cfg.LLM.Providers[0].Timeout)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg-token")
	t.Setenv("DATABASE_URL", "postgres://localhost/finpal")

	cfg, err := LoadFile(writeConfig(t, `
llm:
  providers:
    - {name: deepseek, enabled: true, priority: 1, model: deepseek-chat}
`))
	require.NoError(t, err)
	assert.Equal(t, "tg-token", cfg.Telegram.BotToken)
	assert.Equal(t, "postgres://localhost/finpal", cfg.Postgres.DSN)
}

func TestLoadFile_InvalidLLM(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"ok", LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Model: "m", Enabled: true, Priority: 1}}}, false},
		{"empty", LLMConfig{}, true},
		{"no name", LLMConfig{Providers: []ProviderConfig{{Model: "m", Enabled: true, Priority: 1}}}, true},
		{"no model", LLMConfig{Providers: []ProviderConfig{{Name: "a", Enabled: true, Priority: 1}}}, true},
		{"bad priority", LLMConfig{Providers: []ProviderConfig{{Name: "a", Model: "m", Enabled: true}}}, true},
		{"duplicate priority", LLMConfig{Providers: []ProviderConfig{
			{Name: "a", Model: "m", Enabled: true, Priority: 1},
			{Name: "b", Model: "m", Enabled: true, Priority: 1},
		}}, true},
		{"none enabled", LLMConfig{Providers: []ProviderConfig{{Name: "a", Model: "m"}}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateLLMConfig(&tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
