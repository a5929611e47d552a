package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultEndpoint is the GA4 Measurement Protocol collection endpoint.
const DefaultEndpoint = "https://www.google-analytics.com/mp/collect"

// GtagClient is a Tracker backed by the GA4 Measurement Protocol. Event
// commands become HTTP posts to the collection endpoint; config and consent
// commands update client-local state, mirroring how the browser tag keeps
// those flags internal. Calls are fire-and-forget with a short timeout and
// no retries.
type GtagClient struct {
	httpClient    *http.Client
	endpoint      string
	measurementID string
	apiSecret     string
	clientID      string

	mu          sync.Mutex
	consentMode map[string]any
	configured  bool
}

// GtagOption configures a GtagClient.
type GtagOption func(*GtagClient)

// WithEndpoint overrides the collection endpoint (tests point this at a
// local server).
func WithEndpoint(url string) GtagOption {
	return func(c *GtagClient) { c.endpoint = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) GtagOption {
	return func(c *GtagClient) { c.httpClient = hc }
}

// NewGtagClient creates a Measurement Protocol client for the given
// measurement ID and API secret.
func NewGtagClient(measurementID, apiSecret string, opts ...GtagOption) *GtagClient {
	c := &GtagClient{
		httpClient:    &http.Client{Timeout: 5 * time.Second},
		endpoint:      DefaultEndpoint,
		measurementID: measurementID,
		apiSecret:     apiSecret,
		clientID:      uuid.NewString(),
		consentMode:   make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// mpPayload is the Measurement Protocol request body.
type mpPayload struct {
	ClientID string    `json:"client_id"`
	Events   []mpEvent `json:"events"`
}

type mpEvent struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// Track implements Tracker.
func (c *GtagClient) Track(command, name string, params map[string]any) error {
	switch command {
	case "consent":
		c.mu.Lock()
		for k, v := range params {
			c.consentMode[k] = v
		}
		c.mu.Unlock()
		return nil
	case "config":
		c.mu.Lock()
		c.configured = true
		c.mu.Unlock()
		return nil
	case "event":
		return c.post(name, params)
	default:
		return fmt.Errorf("unknown tracking command %q", command)
	}
}

func (c *GtagClient) post(name string, params map[string]any) error {
	body, err := json.Marshal(mpPayload{
		ClientID: c.clientID,
		Events:   []mpEvent{{Name: name, Params: params}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	url := fmt.Sprintf("%s?measurement_id=%s&api_secret=%s", c.endpoint, c.measurementID, c.apiSecret)
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("collect request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("collect endpoint returned %s", resp.Status)
	}
	return nil
}
