package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickfixlabs/receptionist/internal/domains/persona"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

var ErrProvisioningFailed = errors.New("session provisioning failed")

// CallerIdentity is the fixed participant identity handed to the demo caller.
const CallerIdentity = "customer"

// RoomCreator provisions a named room on the media server.
type RoomCreator interface {
	CreateRoom(ctx context.Context, name string) error
}

// TokenIssuer mints a join credential scoped to one room.
type TokenIssuer interface {
	MintJoin(room, identity string) (string, error)
}

// Handle is everything a client needs to join a provisioned demo session.
type Handle struct {
	Room      string           `json:"room"`
	Token     string           `json:"token"`
	ServerURL string           `json:"server_url"`
	Persona   *persona.Persona `json:"persona"`
}

type Service interface {
	// Provision synthesizes a persona from the complaint and stands up a
	// room the caller can join. A non-nil Handle is complete; there are no
	// partial results.
	Provision(ctx context.Context, complaint string) (*Handle, error)
}

type service struct {
	personas  persona.Service
	rooms     RoomCreator
	tokens    TokenIssuer
	serverURL string
	logger    *Logger.Logger
	now       func() time.Time
}

func NewService(
	personas persona.Service,
	rooms RoomCreator,
	tokens TokenIssuer,
	serverURL string,
	logger *Logger.Logger,
) Service {
	return &service{
		personas:  personas,
		rooms:     rooms,
		tokens:    tokens,
		serverURL: serverURL,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) Provision(ctx context.Context, complaint string) (*Handle, error) {
	p, err := s.personas.Synthesize(ctx, complaint)
	if err != nil {
		if errors.Is(err, persona.ErrEmptyNarrative) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
	}

	room := fmt.Sprintf("demo-%d", s.now().UnixNano())

	// The room must exist before anyone holds a token for it, otherwise a
	// fast client joins a room the agent was never dispatched to.
	if err := s.rooms.CreateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
	}

	token, err := s.tokens.MintJoin(room, CallerIdentity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
	}

	s.logger.Infof("provisioned session %s for persona %q (priority %d)", room, p.Name, p.Priority)
	return &Handle{
		Room:      room,
		Token:     token,
		ServerURL: s.serverURL,
		Persona:   p,
	}, nil
}
