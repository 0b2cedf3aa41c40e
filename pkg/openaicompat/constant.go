package openaicompat

import "time"

const (
	ProviderDeepSeek   = "deepseek"
	ProviderQwen       = "qwen"
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// ResponseFormatJSON forces the model to emit a single JSON object.
	ResponseFormatJSON = "json_object"
)

var defaultBaseURLs = map[string]string{
	ProviderDeepSeek:   "https://api.deepseek.com/v1",
	ProviderQwen:       "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	ProviderOpenRouter: "https://openrouter.ai/api/v1",
	ProviderOpenAI:     "https://api.openai.com/v1",
}

var defaultModels = map[string]string{
	ProviderDeepSeek:   "deepseek-chat",
	ProviderQwen:       "qwen-plus",
	ProviderOpenRouter: "google/gemini-2.0-flash-001",
	ProviderOpenAI:     "gpt-4o-mini",
}
