package factory

import (
	"fmt"
	"time"

	"neoyngpt-be/pkg/llm"
	"neoyngpt-be/pkg/llm/gemini"
	"neoyngpt-be/pkg/llm/huggingface"
	"neoyngpt-be/pkg/llm/ollama"
)

const (
	ProviderGemini      = "gemini"
	ProviderOllama      = "ollama"
	ProviderHuggingFace = "huggingface"
)

// Models used when LLM_MODEL is empty
const (
	DefaultGeminiModel      = "gemini-pro"
	DefaultOllamaModel      = "llama3.1:8b"
	DefaultHuggingFaceModel = "meta-llama/Llama-3.1-8B-Instruct"
)

// DefaultModel returns the model name for providerType, or "" if it is unknown.
func DefaultModel(providerType string) string {
	switch providerType {
	case ProviderGemini:
		return DefaultGeminiModel
	case ProviderOllama:
		return DefaultOllamaModel
	case ProviderHuggingFace:
		return DefaultHuggingFaceModel
	default:
		return ""
	}
}

// NewLLMProvider builds the configured backend. An empty modelName selects
// DefaultModel(providerType). A missing API key is not an error here; keyed
// providers report llm.ErrMissingCredential per call.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string, timeout time.Duration) (llm.LLMProvider, error) {
	if modelName == "" {
		modelName = DefaultModel(providerType)
	}

	switch providerType {
	case ProviderGemini:
		return gemini.NewGeminiProvider(apiKey, baseURL, modelName, timeout), nil
	case ProviderOllama:
		return ollama.NewOllamaProvider(baseURL, modelName, timeout), nil
	case ProviderHuggingFace:
		return huggingface.NewHuggingFaceProvider(apiKey, baseURL, modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}

// RequiresCredential reports whether the provider needs an API key.
func RequiresCredential(providerType string) bool {
	return providerType == ProviderGemini || providerType == ProviderHuggingFace
}
