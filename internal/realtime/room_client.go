package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

const createRoomPath = "/twirp/livekit.RoomService/CreateRoom"

// RoomClient talks to a LiveKit server's Twirp room service over HTTP.
type RoomClient struct {
	baseURL string
	minter  *TokenMinter
	client  *http.Client
	logger  *Logger.Logger
}

func NewRoomClient(serverURL string, minter *TokenMinter, timeout time.Duration, logger *Logger.Logger) *RoomClient {
	return &RoomClient{
		baseURL: httpBaseURL(serverURL),
		minter:  minter,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type createRoomRequest struct {
	Name string `json:"name"`
}

type createRoomResponse struct {
	Sid  string `json:"sid"`
	Name string `json:"name"`
}

// CreateRoom provisions the named room on the server. Creating a room that
// already exists is not an error; the server returns the existing one.
func (c *RoomClient) CreateRoom(ctx context.Context, name string) error {
	body, err := json.Marshal(createRoomRequest{Name: name})
	if err != nil {
		return fmt.Errorf("encoding create-room request: %w", err)
	}

	token, err := c.minter.mintAdmin()
	if err != nil {
		return fmt.Errorf("minting room service token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createRoomPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building create-room request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling room service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("room service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var created createRoomResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return fmt.Errorf("decoding create-room response: %w", err)
	}
	c.logger.Infof("room %s ready (sid %s)", created.Name, created.Sid)
	return nil
}

// httpBaseURL maps a signalling URL (ws:// or wss://) onto the matching HTTP
// origin the Twirp service listens on.
func httpBaseURL(serverURL string) string {
	url := strings.TrimRight(serverURL, "/")
	switch {
	case strings.HasPrefix(url, "wss://"):
		return "https://" + strings.TrimPrefix(url, "wss://")
	case strings.HasPrefix(url, "ws://"):
		return "http://" + strings.TrimPrefix(url, "ws://")
	default:
		return url
	}
}
