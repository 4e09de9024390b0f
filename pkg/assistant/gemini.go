package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiAssistant struct {
	client *genai.Client
}

// NewGemini builds the Gemini-backed assistant. The caller owns Close.
func NewGemini(ctx context.Context, apiKey string) (Assistant, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiAssistant{client: client}, nil
}

// ProcessPrompt implements Assistant.
func (g *geminiAssistant) ProcessPrompt(
	ctx context.Context,
	input AssistantInput,
) (*AssistantOutput, error) {
	model := g.client.GenerativeModel(input.Model)
	if input.Temperature > 0 {
		model.Temperature = &input.Temperature
	}
	if input.JSONOnly {
		model.ResponseMIMEType = "application/json"
	}

	// Gemini carries system instructions outside the message list.
	var system, user strings.Builder
	for _, msg := range input.Msgs {
		switch msg.MsgRole {
		case SYSTEM:
			system.WriteString(msg.Content)
			system.WriteString("\n")
		default:
			user.WriteString(msg.Content)
			user.WriteString("\n")
		}
	}
	if system.Len() > 0 {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system.String())},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(user.String()))
	if err != nil {
		return nil, fmt.Errorf("gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyCompletion
	}

	var responseText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			responseText += string(textPart)
		}
	}
	if responseText == "" {
		return nil, ErrEmptyCompletion
	}

	return &AssistantOutput{
		Response: AssistantMessage{
			Content:   responseText,
			CreatedAt: time.Now(),
			MsgRole:   ASSISTANT,
		},
	}, nil
}

// Close releases the underlying Gemini client.
func (g *geminiAssistant) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
