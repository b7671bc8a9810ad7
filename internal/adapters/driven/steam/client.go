// Package steam provides the store catalog and title detail clients.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driven"
)

// Ensure Client implements the interfaces.
var (
	_ driven.CatalogClient = (*Client)(nil)
	_ driven.DetailClient  = (*Client)(nil)
)

// Default configuration values.
const (
	DefaultBaseURL = domain.DefaultStoreURL
	DefaultTimeout = domain.DefaultTimeoutSeconds * time.Second
	userAgent      = "undiscovered"
)

// Config holds configuration for the store client.
type Config struct {
	// BaseURL is the store root (default: https://store.steampowered.com).
	BaseURL string

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing requests. 0 disables throttling.
	RequestsPerSecond float64

	// HTTPClient overrides the shared client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the store's search, details and reviews endpoints.
// One Client is shared by all concurrent calls.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *RateLimiter
}

// NewClient creates a new store client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	return &Client{
		client:  httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: NewRateLimiter(cfg.RequestsPerSecond),
	}
}

// get issues a GET request. The caller closes the body.
func (c *Client) get(ctx context.Context, op, path string, query url.Values) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domain.NewRequestError(domain.KindTransport, op, fmt.Errorf("rate limiter: %w", err))
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, domain.NewRequestError(domain.KindOther, op, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewRequestError(domain.KindTransport, op, err)
	}
	return resp, nil
}

// decode reads a JSON body into v.
func decode(op string, resp *http.Response, v any) error {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return domain.NewRequestError(domain.KindDecode, op, err)
	}
	return nil
}
