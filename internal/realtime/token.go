package realtime

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingKeypair = errors.New("realtime api key and secret are required")

// VideoGrant is the LiveKit video permission block embedded in access tokens.
// Caller tokens carry room join only; the room client mints itself a
// room-create grant.
type VideoGrant struct {
	Room       string `json:"room,omitempty"`
	RoomJoin   bool   `json:"roomJoin,omitempty"`
	RoomCreate bool   `json:"roomCreate,omitempty"`
}

type accessClaims struct {
	Video VideoGrant `json:"video"`
	Name  string     `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenMinter signs LiveKit-compatible HS256 access tokens.
type TokenMinter struct {
	apiKey    string
	apiSecret string
	ttl       time.Duration
}

func NewTokenMinter(apiKey, apiSecret string, ttl time.Duration) (*TokenMinter, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, ErrMissingKeypair
	}
	return &TokenMinter{apiKey: apiKey, apiSecret: apiSecret, ttl: ttl}, nil
}

// MintJoin issues a token letting identity join room and nothing else.
func (m *TokenMinter) MintJoin(room, identity string) (string, error) {
	return m.mint(identity, VideoGrant{Room: room, RoomJoin: true})
}

func (m *TokenMinter) mintAdmin() (string, error) {
	return m.mint(m.apiKey, VideoGrant{RoomCreate: true})
}

func (m *TokenMinter) mint(identity string, grant VideoGrant) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Video: grant,
		Name:  identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.apiKey,
			Subject:   identity,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.apiSecret))
}
