package llmprovider_test

import (
	"errors"
	"testing"

	"finpal-guardian/config"
	"finpal-guardian/pkg/llmprovider"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash", Timeout: "30s"},
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "d", Model: "deepseek-chat"},
			{Name: "openrouter", Enabled: false, Priority: 3, APIKey: "o"},
			{Name: "qwen", Enabled: true, Priority: 4, Model: "qwen-plus"}, // no key
			{Name: "mystery", Enabled: true, Priority: 5, APIKey: "x"},
		},
	}

	providers, initErrs, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "deepseek" || providers[1].Name() != "gemini" {
		t.Errorf("Unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
	if len(initErrs) != 2 {
		t.Errorf("Expected 2 init errors, got %d", len(initErrs))
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	_, _, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", APIKey: "k"}},
	})
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}

	if _, _, err := llmprovider.InitializeProviders(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestInitializeProviders_BadTimeout(t *testing.T) {
	_, initErrs, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Timeout: "soon"}},
	})
	if err == nil {
		t.Fatal("Expected error when the only provider fails")
	}
	if len(initErrs) != 1 {
		t.Errorf("Expected 1 init error, got %d", len(initErrs))
	}
}
