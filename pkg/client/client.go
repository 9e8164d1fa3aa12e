// Package client provides a Go client for the galley HTTP API.
//
// The client wraps the /v1 endpoints exposed by `galley serve` and
// retries transient failures (network errors, 5xx responses) with
// exponential backoff.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/galleykit/galley/pkg/pipeline"
)

// Client calls the galley HTTP API.
type Client struct {
	baseURL  string
	httpc    *http.Client
	attempts int
	delay    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithRetries overrides the retry policy. Attempts below 1 are clamped.
func WithRetries(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		httpc:    &http.Client{Timeout: 2 * time.Minute},
		attempts: 3,
		delay:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SimulateResult is the response of a simulation request. Result holds
// the full simulation document as returned by the server.
type SimulateResult struct {
	Result   json.RawMessage `json:"result"`
	SVG      string          `json:"svg,omitempty"`
	PlanHash string          `json:"plan_hash"`
	Cached   bool            `json:"cached"`
}

// CatalogItem is one equipment entry in a catalog listing.
type CatalogItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Width    float64 `json:"width"`
	Depth    float64 `json:"depth"`
}

// apiError is the server's error envelope.
type apiError struct {
	Error string `json:"error"`
}

// Simulate runs a simulation on the server. The options mirror the CLI
// flags; only the json and svg formats are available over the API.
func (c *Client) Simulate(ctx context.Context, opts pipeline.Options) (*SimulateResult, error) {
	body, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	var result SimulateResult
	err = Retry(ctx, c.attempts, c.delay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/simulate", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		return c.do(req, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Catalog lists the equipment catalog. An empty business lists every
// entry; otherwise the business default set is returned.
func (c *Client) Catalog(ctx context.Context, business string) ([]CatalogItem, error) {
	url := c.baseURL + "/v1/catalog"
	if business != "" {
		url += "?business=" + business
	}

	var body struct {
		Items []CatalogItem `json:"items"`
	}
	err := Retry(ctx, c.attempts, c.delay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		return c.do(req, &body)
	})
	if err != nil {
		return nil, err
	}
	return body.Items, nil
}

// Health checks the server's liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	return c.do(req, &struct{}{})
}

// do executes the request and decodes the JSON response into v.
// 5xx responses and transport errors are marked retryable.
func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &RetryableError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RetryableError{Err: err}
	}

	if resp.StatusCode >= 500 {
		return &RetryableError{Err: fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)}
	}
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
