package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/presbrey/ollamafarm"
)

// ollamaAssistant runs completions against locally hosted models. Useful for
// demos without any hosted-model API key.
type ollamaAssistant struct {
	farm *ollamafarm.Farm
}

// NewOllama registers the configured server URLs with the farm. Registration
// failures are returned immediately rather than surfacing later per request.
func NewOllama(serverURLs []string) (Assistant, error) {
	farm := ollamafarm.New()
	for _, u := range serverURLs {
		if err := farm.RegisterURL(u, nil); err != nil {
			return nil, fmt.Errorf("failed to register ollama server %s: %w", u, err)
		}
	}
	return &ollamaAssistant{farm: farm}, nil
}

// ProcessPrompt implements Assistant.
func (o *ollamaAssistant) ProcessPrompt(
	ctx context.Context,
	input AssistantInput,
) (*AssistantOutput, error) {
	// pick first available client
	srv := o.farm.First(&ollamafarm.Where{Offline: false})
	if srv == nil {
		return nil, fmt.Errorf("no ollama server online for model %s", input.Model)
	}

	msgs := make([]api.Message, 0, len(input.Msgs))
	for _, m := range input.Msgs {
		msgs = append(msgs, api.Message{Role: string(m.MsgRole), Content: m.Content})
	}

	stream := false
	req := api.ChatRequest{
		Model:    input.Model,
		Messages: msgs,
		Stream:   &stream,
	}
	if input.Temperature > 0 {
		req.Options = map[string]interface{}{"temperature": input.Temperature}
	}
	if input.JSONOnly {
		req.Format = "json"
	}

	var sb strings.Builder
	err := srv.Client().Chat(ctx, &req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama completion failed: %w", err)
	}
	if sb.Len() == 0 {
		return nil, ErrEmptyCompletion
	}

	return &AssistantOutput{
		Response: AssistantMessage{
			Content:   sb.String(),
			CreatedAt: time.Now(),
			MsgRole:   ASSISTANT,
		},
	}, nil
}
