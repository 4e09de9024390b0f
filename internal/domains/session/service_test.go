package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickfixlabs/receptionist/internal/domains/persona"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

type stubPersonas struct {
	persona *persona.Persona
	err     error
}

func (s *stubPersonas) Synthesize(context.Context, string) (*persona.Persona, error) {
	return s.persona, s.err
}

type stubRooms struct {
	created []string
	err     error
}

func (s *stubRooms) CreateRoom(_ context.Context, name string) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, name)
	return nil
}

type stubTokens struct {
	room     string
	identity string
	err      error
}

func (s *stubTokens) MintJoin(room, identity string) (string, error) {
	s.room, s.identity = room, identity
	if s.err != nil {
		return "", s.err
	}
	return "tok-" + room, nil
}

var testPersona = &persona.Persona{Name: "Margaret", Age: 67, Issue: "flooding", Emotion: "furious", Priority: 9}

func TestProvision(t *testing.T) {
	rooms := &stubRooms{}
	tokens := &stubTokens{}
	svc := NewService(&stubPersonas{persona: testPersona}, rooms, tokens, "wss://lk.example.com", Logger.NewNop())
	svc.(*service).now = func() time.Time { return time.Unix(0, 1724900000000000000) }

	h, err := svc.Provision(context.Background(), "complaint")
	require.NoError(t, err)

	assert.Equal(t, "demo-1724900000000000000", h.Room)
	assert.Equal(t, "tok-demo-1724900000000000000", h.Token)
	assert.Equal(t, "wss://lk.example.com", h.ServerURL)
	assert.Equal(t, testPersona, h.Persona)

	assert.Equal(t, []string{h.Room}, rooms.created, "room must be created before the handle is returned")
	assert.Equal(t, CallerIdentity, tokens.identity)
	assert.Equal(t, h.Room, tokens.room)
}

func TestProvisionPersonaFailure(t *testing.T) {
	rooms := &stubRooms{}
	svc := NewService(&stubPersonas{err: persona.ErrGenerationFailed}, rooms, &stubTokens{}, "wss://x", Logger.NewNop())

	_, err := svc.Provision(context.Background(), "complaint")
	assert.ErrorIs(t, err, ErrProvisioningFailed)
	assert.Empty(t, rooms.created, "no room may be created when persona synthesis fails")
}

func TestProvisionEmptyNarrativePassesThrough(t *testing.T) {
	svc := NewService(&stubPersonas{err: persona.ErrEmptyNarrative}, &stubRooms{}, &stubTokens{}, "wss://x", Logger.NewNop())
	_, err := svc.Provision(context.Background(), "")
	assert.ErrorIs(t, err, persona.ErrEmptyNarrative)
	assert.NotErrorIs(t, err, ErrProvisioningFailed)
}

func TestProvisionRoomFailure(t *testing.T) {
	tokens := &stubTokens{}
	svc := NewService(&stubPersonas{persona: testPersona}, &stubRooms{err: errors.New("twirp 500")}, tokens, "wss://x", Logger.NewNop())

	h, err := svc.Provision(context.Background(), "complaint")
	assert.ErrorIs(t, err, ErrProvisioningFailed)
	assert.Nil(t, h)
	assert.Empty(t, tokens.room, "no token may be minted for a room that was not created")
}

func TestProvisionTokenFailure(t *testing.T) {
	svc := NewService(&stubPersonas{persona: testPersona}, &stubRooms{}, &stubTokens{err: errors.New("bad key")}, "wss://x", Logger.NewNop())
	h, err := svc.Provision(context.Background(), "complaint")
	assert.ErrorIs(t, err, ErrProvisioningFailed)
	assert.Nil(t, h)
}
