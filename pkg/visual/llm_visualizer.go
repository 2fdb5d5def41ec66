package visual

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"neoyngpt-be/internal/pkg/apperror"
	"neoyngpt-be/pkg/llm"
)

const schemaPromptTemplate = `Analyze this query and create a visual representation schema. Return only a JSON object with 'nodes' and 'connections' arrays. Nodes should have 'id', 'label', and 'type'. Connections should have 'from', 'to', and optional 'label'. Query: "%s"`

const visualErrorPrefix = "Failed to generate visual representation"

// LLMVisualizer asks the language model for the schema instead of using heuristics.
type LLMVisualizer struct {
	provider  llm.LLMProvider
	maxTokens int
}

var _ Generator = (*LLMVisualizer)(nil)

func NewLLMVisualizer(provider llm.LLMProvider, maxTokens int) *LLMVisualizer {
	return &LLMVisualizer{provider: provider, maxTokens: maxTokens}
}

type rawSchema struct {
	Nodes       *[]Node       `json:"nodes"`
	Connections *[]Connection `json:"connections"`
}

func (v *LLMVisualizer) Generate(ctx context.Context, query string) (VisualResponse, error) {
	if v.provider == nil {
		return VisualResponse{}, apperror.NewConfigurationError("LLM provider is not configured. Please check your environment variables.")
	}

	opts := []llm.Option{llm.WithTemperature(0)}
	if v.maxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(v.maxTokens))
	}

	text, err := v.provider.Generate(ctx, fmt.Sprintf(schemaPromptTemplate, query), opts...)
	if err != nil {
		if errors.Is(err, llm.ErrMissingCredential) {
			return VisualResponse{}, apperror.NewConfigurationError("LLM provider is not configured. Please check your environment variables.")
		}
		if _, ok := apperror.As(err); ok {
			return VisualResponse{}, err
		}
		return VisualResponse{}, apperror.NewProviderError(visualErrorPrefix, err)
	}

	schema, err := ParseSchema(text)
	if err != nil {
		return VisualResponse{}, apperror.NewProviderError(visualErrorPrefix, err)
	}
	return schema, nil
}

// ParseSchema decodes a model reply, tolerating a markdown code fence around the JSON.
func ParseSchema(text string) (VisualResponse, error) {
	body := bytes.TrimSpace([]byte(text))
	body = bytes.TrimPrefix(body, []byte("```json"))
	body = bytes.TrimPrefix(body, []byte("```"))
	body = bytes.TrimSuffix(body, []byte("```"))
	body = bytes.TrimSpace(body)

	if len(body) == 0 {
		return VisualResponse{}, errors.New("invalid response format from LLM")
	}

	var raw rawSchema
	if err := json.Unmarshal(body, &raw); err != nil {
		return VisualResponse{}, fmt.Errorf("parse error: %w", err)
	}
	if raw.Nodes == nil || raw.Connections == nil {
		return VisualResponse{}, errors.New("invalid response structure from LLM")
	}

	return newVisualResponse(*raw.Nodes, *raw.Connections), nil
}
