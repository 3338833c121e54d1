package space

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fleencorp/stream-service/internal/config"
)

// Client asks the chat-space service whether a member belongs to a space.
// Space membership pre-authorizes join requests to private streams.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Space.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Space.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) IsSpaceMember(ctx context.Context, spaceID, memberID string) (bool, error) {
	path := fmt.Sprintf("/api/spaces/%s/members/%s", spaceID, memberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var membership struct {
		IsMember bool `json:"is_member"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&membership); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}

	return membership.IsMember, nil
}
