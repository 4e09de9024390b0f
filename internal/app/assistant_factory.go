package app

import (
	"context"
	"fmt"

	"github.com/quickfixlabs/receptionist/internal/config"
	"github.com/quickfixlabs/receptionist/pkg/assistant"
)

// NewAssistant builds the generation backend named by the config. The
// returned cleanup releases provider resources and is safe to call once.
func NewAssistant(ctx context.Context, cfg *config.Settings) (assistant.Assistant, func(), error) {
	switch cfg.Assistant.Provider {
	case "openai":
		return assistant.NewOpenAI(cfg.AssistantKeys.OpenAiApiKey), func() {}, nil
	case "gemini":
		gem, err := assistant.NewGemini(ctx, cfg.AssistantKeys.GeminiApiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing gemini backend: %w", err)
		}
		cleanup := func() {}
		if closer, ok := gem.(interface{ Close() error }); ok {
			cleanup = func() { _ = closer.Close() }
		}
		return gem, cleanup, nil
	case "ollama":
		oll, err := assistant.NewOllama([]string{cfg.Assistant.OllamaURL})
		if err != nil {
			return nil, nil, fmt.Errorf("initializing ollama backend: %w", err)
		}
		return oll, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown assistant provider %q", cfg.Assistant.Provider)
	}
}
