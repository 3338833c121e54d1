package member

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fleencorp/stream-service/internal/config"
	"github.com/fleencorp/stream-service/internal/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Members.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Members.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) GetMemberByUUID(ctx context.Context, memberUUID string) (*model.MemberInfo, error) {
	return c.get(ctx, "/api/members/"+memberUUID)
}

// GetMemberByEmail returns (nil, nil) when no member carries the email;
// an unknown email is a regular outcome for the direct-add flow, not an
// error.
func (c *Client) GetMemberByEmail(ctx context.Context, email string) (*model.MemberInfo, error) {
	info, err := c.get(ctx, "/api/members/by-email/"+url.PathEscape(email))
	if err != nil {
		return nil, err
	}

	return info, nil
}

func (c *Client) get(ctx context.Context, path string) (*model.MemberInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info model.MemberInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &info, nil
}
