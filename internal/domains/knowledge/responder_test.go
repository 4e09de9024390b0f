package knowledge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickfixlabs/receptionist/pkg/Logger"
	"github.com/quickfixlabs/receptionist/pkg/assistant"
)

type stubAssistant struct {
	lastInput assistant.AssistantInput
	response  string
	err       error
	block     bool
}

func (s *stubAssistant) ProcessPrompt(ctx context.Context, input assistant.AssistantInput) (*assistant.AssistantOutput, error) {
	s.lastInput = input
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return &assistant.AssistantOutput{
		Response: assistant.AssistantMessage{Content: s.response, MsgRole: assistant.ASSISTANT},
	}, nil
}

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Load(writeSnapshot(t, validSnapshot))
	require.NoError(t, err)
	return store
}

func TestAnswerGroundsPromptInSnapshot(t *testing.T) {
	stub := &stubAssistant{response: "We charge 220 for boiler repairs."}
	svc := NewResponder(testStore(t), stub, "QuickFix Plumbing", "gpt-4o-mini", time.Second, Logger.NewNop())

	ans, err := svc.Answer(context.Background(), "How much is a boiler repair?")
	require.NoError(t, err)

	assert.Equal(t, "We charge 220 for boiler repairs.", ans.Text)
	assert.Equal(t, SourceTag, ans.Source)

	require.Len(t, stub.lastInput.Msgs, 2)
	sys := stub.lastInput.Msgs[0]
	assert.Equal(t, assistant.SYSTEM, sys.MsgRole)
	assert.Contains(t, sys.Content, "QuickFix Plumbing")
	assert.Contains(t, sys.Content, `"base_price": 220`)
	assert.Equal(t, "How much is a boiler repair?", stub.lastInput.Msgs[1].Content)
	assert.Equal(t, "gpt-4o-mini", stub.lastInput.Model)
}

func TestAnswerEmptyQuestionSkipsBackend(t *testing.T) {
	stub := &stubAssistant{err: errors.New("must not be called")}
	svc := NewResponder(testStore(t), stub, "QuickFix Plumbing", "gpt-4o-mini", time.Second, Logger.NewNop())

	for _, q := range []string{"", "   ", "\n\t"} {
		ans, err := svc.Answer(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, emptyQuestionReply, ans.Text)
		assert.Equal(t, SourceTag, ans.Source)
	}
	assert.Empty(t, stub.lastInput.Msgs, "backend was called for an empty question")
}

func TestAnswerBackendFailure(t *testing.T) {
	stub := &stubAssistant{err: errors.New("upstream 500")}
	svc := NewResponder(testStore(t), stub, "QuickFix Plumbing", "gpt-4o-mini", time.Second, Logger.NewNop())

	_, err := svc.Answer(context.Background(), "hello?")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestAnswerBackendTimeout(t *testing.T) {
	stub := &stubAssistant{block: true}
	svc := NewResponder(testStore(t), stub, "QuickFix Plumbing", "gpt-4o-mini", 20*time.Millisecond, Logger.NewNop())

	_, err := svc.Answer(context.Background(), "hello?")
	assert.ErrorIs(t, err, ErrGenerationTimeout)
}
