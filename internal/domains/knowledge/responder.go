package knowledge

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

// SourceTag marks every grounded answer so clients can tell snapshot-backed
// responses from anything else.
const SourceTag = "company_knowledge"

var (
	ErrGenerationFailed  = errors.New("answer generation failed")
	ErrGenerationTimeout = errors.New("answer generation timed out")
)

// Answer is a grounded response to a company question.
type Answer struct {
	Text   string `json:"answer"`
	Source string `json:"source"`
}

type ResponderService interface {
	Answer(ctx context.Context, question string) (*Answer, error)
}

type responderService struct {
	store        *Store
	asst         assistant.Assistant
	businessName string
	model        string
	timeout      time.Duration
	logger       *Logger.Logger
}

func NewResponder(
	store *Store,
	asst assistant.Assistant,
	businessName string,
	model string,
	timeout time.Duration,
	logger *Logger.Logger,
) ResponderService {
	return &responderService{
		store:        store,
		asst:         asst,
		businessName: businessName,
		model:        model,
		timeout:      timeout,
		logger:       logger,
	}
}

const emptyQuestionReply = "You haven't asked anything yet. Ask me about our services, pricing or opening hours."

func (s *responderService) Answer(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return &Answer{Text: emptyQuestionReply, Source: SourceTag}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.asst.ProcessPrompt(ctx, assistant.AssistantInput{
		Msgs: []assistant.AssistantMessage{
			{
				MsgRole: assistant.SYSTEM,
				Content: prompts.GroundedSystem(s.businessName, s.store.ContextJSON()),
			},
			{
				MsgRole: assistant.USER,
				Content: question,
			},
		},
		Model: s.model,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warnf("answer generation timed out after %s", s.timeout)
			return nil, fmt.Errorf("%w: %v", ErrGenerationTimeout, err)
		}
		s.logger.Errorf("answer generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return &Answer{Text: out.Response.Content, Source: SourceTag}, nil
}
