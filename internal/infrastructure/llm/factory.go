package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	gatepassapp "github.com/zumech/backend/internal/application/gatepass"
	"github.com/zumech/backend/internal/infrastructure/config"
)

// New builds the language model named by cfg.Provider. It returns nil and
// no error when no API key is configured; extraction then reports the
// service as unavailable.
func New(ctx context.Context, cfg config.LLMConfig, log *zap.Logger) (gatepassapp.LanguageModel, error) {
	if !cfg.Configured() {
		return nil, nil
	}
	switch cfg.Provider {
	case config.LLMProviderGroq, "":
		client, err := NewGroqClient(GroqConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
			Logger:  log,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.LLMProviderGemini:
		client, err := NewGeminiClient(ctx, GeminiConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
			Logger:  log,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
