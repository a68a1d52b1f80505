// Package eventlog is the HTTP client for the external event-log service.
package eventlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"trip-platform/internal/activity"
)

// Client talks to the event-log API:
//
//	POST  <base>/event-logs/      -> 201 {"data":{"id":N}}
//	PATCH <base>/event-logs/{id}/ -> 200
//
// Calls carry a bounded timeout and are attempted exactly once; retrying
// best-effort telemetry is not worth the request-path latency.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ activity.Sink = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type createEnvelope struct {
	Data struct {
		ID int64 `json:"id"`
	} `json:"data"`
}

func (c *Client) Create(ctx context.Context, ev activity.Event) (int64, error) {
	resp, err := c.send(ctx, http.MethodPost, c.baseURL+"/event-logs/", ev)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("eventlog: create returned %d: %s", resp.StatusCode, string(body))
	}

	var env createEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return 0, fmt.Errorf("eventlog: decode create response: %w", err)
	}
	if env.Data.ID == 0 {
		return 0, fmt.Errorf("eventlog: create response missing id")
	}
	return env.Data.ID, nil
}

func (c *Client) Update(ctx context.Context, ev activity.Event) error {
	if ev.ID == 0 {
		return fmt.Errorf("eventlog: update requires an id")
	}
	url := fmt.Sprintf("%s/event-logs/%d/", c.baseURL, ev.ID)
	resp, err := c.send(ctx, http.MethodPatch, url, ev)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("eventlog: update returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, url string, ev activity.Event) (*http.Response, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("eventlog: marshal event: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("eventlog: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eventlog: %w", err)
	}
	return resp, nil
}
