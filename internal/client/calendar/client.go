package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fleencorp/stream-service/internal/config"
	"github.com/fleencorp/stream-service/internal/model"
)

// Client talks to the external calendar gateway. Every call carries the
// bounded timeout from config so a slow gateway cannot pile up goroutines
// in the sync worker.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Calendar.BaseURL,
		apiKey:  cfg.Calendar.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Calendar.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) CreateEvent(ctx context.Context, event *model.CalendarEvent) (*model.CreatedCalendarEvent, error) {
	var created model.CreatedCalendarEvent
	if err := c.do(ctx, http.MethodPost, "/api/events", event, &created); err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &created, nil
}

func (c *Client) CancelEvent(ctx context.Context, eventID string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/events/"+eventID, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel calendar event: %w", err)
	}

	return nil
}

func (c *Client) RescheduleEvent(ctx context.Context, eventID string, startsAt, endsAt time.Time, timezone string) error {
	payload := map[string]interface{}{
		"starts_at": startsAt,
		"ends_at":   endsAt,
		"timezone":  timezone,
	}

	if err := c.do(ctx, http.MethodPatch, "/api/events/"+eventID+"/schedule", payload, nil); err != nil {
		return fmt.Errorf("failed to reschedule calendar event: %w", err)
	}

	return nil
}

func (c *Client) PatchEvent(ctx context.Context, eventID string, event *model.CalendarEvent) error {
	if err := c.do(ctx, http.MethodPatch, "/api/events/"+eventID, event, nil); err != nil {
		return fmt.Errorf("failed to patch calendar event: %w", err)
	}

	return nil
}

func (c *Client) AddAttendee(ctx context.Context, eventID string, attendee *model.CalendarAttendee) error {
	if err := c.do(ctx, http.MethodPost, "/api/events/"+eventID+"/attendees", attendee, nil); err != nil {
		return fmt.Errorf("failed to add calendar attendee: %w", err)
	}

	return nil
}

func (c *Client) AddAttendees(ctx context.Context, eventID string, emails []string) error {
	payload := map[string]interface{}{
		"emails": emails,
	}

	if err := c.do(ctx, http.MethodPost, "/api/events/"+eventID+"/attendees/batch", payload, nil); err != nil {
		return fmt.Errorf("failed to add calendar attendees: %w", err)
	}

	return nil
}

func (c *Client) UpdateVisibility(ctx context.Context, eventID, visibility string) error {
	payload := map[string]interface{}{
		"visibility": visibility,
	}

	if err := c.do(ctx, http.MethodPatch, "/api/events/"+eventID+"/visibility", payload, nil); err != nil {
		return fmt.Errorf("failed to update calendar event visibility: %w", err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body *bytes.Buffer
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error != "" {
			return fmt.Errorf("calendar gateway error: %s", errResp.Error)
		}
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
