package service

import (
	"context"
	"errors"
	"strings"

	"neoyngpt-be/internal/pkg/apperror"
	"neoyngpt-be/internal/pkg/logger"
	"neoyngpt-be/pkg/llm"
)

const textErrorPrefix = "Failed to generate text response"

type ITextService interface {
	GenerateText(ctx context.Context, query string) (string, error)
}

type textService struct {
	provider  llm.LLMProvider
	maxTokens int
	logger    logger.ILogger
}

func NewTextService(provider llm.LLMProvider, maxTokens int, log logger.ILogger) ITextService {
	return &textService{
		provider:  provider,
		maxTokens: maxTokens,
		logger:    log,
	}
}

// GenerateText sends the raw query as the prompt.
func (s *textService) GenerateText(ctx context.Context, query string) (string, error) {
	if s.provider == nil {
		return "", apperror.NewConfigurationError("API key is not configured. Please check your environment variables.")
	}

	var opts []llm.Option
	if s.maxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(s.maxTokens))
	}

	text, err := s.provider.Generate(ctx, query, opts...)
	if err != nil {
		if errors.Is(err, llm.ErrMissingCredential) {
			return "", apperror.NewConfigurationError("API key is not configured. Please check your environment variables.")
		}
		s.logger.Error("TextService", "LLM provider call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", apperror.NewProviderError(textErrorPrefix, err)
	}

	if strings.TrimSpace(text) == "" {
		s.logger.Warn("TextService", "LLM provider returned empty text", nil)
		return "", apperror.NewEmptyResponseError("Empty response from LLM provider")
	}

	return text, nil
}
