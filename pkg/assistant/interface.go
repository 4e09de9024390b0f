package assistant

import (
	"context"
	"errors"
	"time"
)

type Role string

const (
	USER      Role = "user"
	ASSISTANT Role = "assistant"
	SYSTEM    Role = "system"
)

// ErrEmptyCompletion is returned when a backend answers successfully but with
// no usable text.
var ErrEmptyCompletion = errors.New("assistant returned an empty completion")

type AssistantMessage struct {
	Content   string
	CreatedAt time.Time
	MsgRole   Role
}

type AssistantInput struct {
	Msgs        []AssistantMessage
	Model       string
	Temperature float32
	// JSONOnly asks the backend for a bare JSON body where the backend
	// supports enforcing it; otherwise the prompt has to carry the
	// instruction.
	JSONOnly bool
}

type AssistantOutput struct {
	Id       string
	Response AssistantMessage
}

// Assistant is the generation backend seam. One call, one completion; no
// streaming at this boundary.
type Assistant interface {
	ProcessPrompt(ctx context.Context, input AssistantInput) (*AssistantOutput, error)
}
