package persona

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quickfixlabs/receptionist/internal/constants/prompts"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
	"github.com/quickfixlabs/receptionist/pkg/assistant"
)

var (
	ErrEmptyNarrative   = errors.New("complaint narrative is empty")
	ErrGenerationFailed = errors.New("persona generation failed")
)

type Service interface {
	// Synthesize turns a complaint narrative into a caller persona.
	Synthesize(ctx context.Context, complaint string) (*Persona, error)
}

type service struct {
	asst    assistant.Assistant
	model   string
	timeout time.Duration
	logger  *Logger.Logger
}

func NewService(asst assistant.Assistant, model string, timeout time.Duration, logger *Logger.Logger) Service {
	return &service{asst: asst, model: model, timeout: timeout, logger: logger}
}

func (s *service) Synthesize(ctx context.Context, complaint string) (*Persona, error) {
	complaint = strings.TrimSpace(complaint)
	if complaint == "" {
		return nil, ErrEmptyNarrative
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.asst.ProcessPrompt(ctx, assistant.AssistantInput{
		Msgs: []assistant.AssistantMessage{
			{MsgRole: assistant.SYSTEM, Content: prompts.PersonaSystem},
			{MsgRole: assistant.USER, Content: fmt.Sprintf("Customer complaint: %s", complaint)},
		},
		Model:    s.model,
		JSONOnly: true,
	})
	if err != nil {
		s.logger.Errorf("persona generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	p, err := decode(out.Response.Content)
	if err != nil {
		s.logger.Errorf("persona completion rejected: %v", err)
		return nil, err
	}
	if clampPriority(p) {
		s.logger.Warnf("persona priority out of range for %q, clamped to %d", p.Name, p.Priority)
	}
	return p, nil
}
