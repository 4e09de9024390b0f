package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

const (
	testKey    = "APIabc123"
	testSecret = "secret-sauce-secret-sauce-secret"
)

func parseClaims(t *testing.T, raw string) *accessClaims {
	t.Helper()
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		require.IsType(t, jwt.SigningMethodHS256, tok.Method)
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return claims
}

func TestMintJoinGrantsSingleRoomOnly(t *testing.T) {
	minter, err := NewTokenMinter(testKey, testSecret, time.Hour)
	require.NoError(t, err)

	raw, err := minter.MintJoin("demo-12345", "customer")
	require.NoError(t, err)

	claims := parseClaims(t, raw)
	assert.Equal(t, testKey, claims.Issuer)
	assert.Equal(t, "customer", claims.Subject)
	assert.Equal(t, VideoGrant{Room: "demo-12345", RoomJoin: true}, claims.Video)
	assert.False(t, claims.Video.RoomCreate, "join tokens must not carry admin rights")
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestMintAdminGrantsRoomCreateOnly(t *testing.T) {
	minter, err := NewTokenMinter(testKey, testSecret, time.Minute)
	require.NoError(t, err)

	raw, err := minter.mintAdmin()
	require.NoError(t, err)

	claims := parseClaims(t, raw)
	assert.True(t, claims.Video.RoomCreate)
	assert.False(t, claims.Video.RoomJoin)
	assert.Empty(t, claims.Video.Room)
}

func TestNewTokenMinterRequiresKeypair(t *testing.T) {
	_, err := NewTokenMinter("", testSecret, time.Hour)
	assert.ErrorIs(t, err, ErrMissingKeypair)
	_, err = NewTokenMinter(testKey, "", time.Hour)
	assert.ErrorIs(t, err, ErrMissingKeypair)
}

func TestCreateRoom(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody createRoomRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(createRoomResponse{Sid: "RM_x", Name: gotBody.Name})
	}))
	defer srv.Close()

	minter, err := NewTokenMinter(testKey, testSecret, time.Minute)
	require.NoError(t, err)
	client := NewRoomClient(srv.URL, minter, time.Second, Logger.NewNop())

	require.NoError(t, client.CreateRoom(context.Background(), "demo-42"))
	assert.Equal(t, createRoomPath, gotPath)
	assert.Equal(t, "demo-42", gotBody.Name)

	require.Regexp(t, `^Bearer .+`, gotAuth)
	claims := parseClaims(t, gotAuth[len("Bearer "):])
	assert.True(t, claims.Video.RoomCreate)
}

func TestCreateRoomServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"code": "internal"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	minter, err := NewTokenMinter(testKey, testSecret, time.Minute)
	require.NoError(t, err)
	client := NewRoomClient(srv.URL, minter, time.Second, Logger.NewNop())

	err = client.CreateRoom(context.Background(), "demo-42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPBaseURL(t *testing.T) {
	assert.Equal(t, "https://lk.example.com", httpBaseURL("wss://lk.example.com/"))
	assert.Equal(t, "http://localhost:7880", httpBaseURL("ws://localhost:7880"))
	assert.Equal(t, "https://lk.example.com", httpBaseURL("https://lk.example.com"))
}
