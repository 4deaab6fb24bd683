// Package api is the typed client for the office-booking backend REST API.
// Gateways map backend DTOs into view models at this boundary; errors are
// classified here and propagate to callers otherwise untouched.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/rs/zerolog"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/logger"
	"github.com/ITSSBackToSchool/echipa2-frontend/internal/session"
)

// Config holds common client configuration.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheDir string // when set, cacheable GETs persist across runs
	Debug    bool
}

// DefaultConfig returns a default client configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8080",
		Timeout: 30 * time.Second,
	}
}

// Client bundles the gateways sharing one authenticated HTTP client.
type Client struct {
	base *url.URL
	http *http.Client

	Auth         *AuthGateway
	Locations    *LocationsGateway
	Reservations *ReservationGateway
	Environment  *EnvironmentGateway
}

// New creates a client whose transport chain is: bearer authenticator →
// request logger → HTTP cache → default transport. The cache only ever
// serves GETs the backend marked cacheable.
func New(cfg Config, store *session.Store, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", cfg.BaseURL, err)
	}

	var cache httpcache.Cache = httpcache.NewMemoryCache()
	if cfg.CacheDir != "" {
		cache = diskcache.New(cfg.CacheDir)
	}

	var transport http.RoundTripper = httpcache.NewTransport(cache)
	transport = logger.NewHTTPRequests(log, transport)
	transport = &bearerTransport{base: transport, store: store}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultConfig().Timeout
	}

	c := &Client{
		base: base,
		http: &http.Client{Transport: transport, Timeout: timeout},
	}
	c.Auth = &AuthGateway{client: c, store: store}
	c.Locations = &LocationsGateway{client: c}
	c.Reservations = &ReservationGateway{client: c}
	c.Environment = &EnvironmentGateway{client: c}

	return c, nil
}

// get issues a GET and decodes a JSON body into out when out is non-nil.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// send issues a JSON request with a body and decodes the JSON response.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, method, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// getText issues a GET for endpoints that answer with a plain-text body.
func (c *Client) getText(ctx context.Context, path string, query url.Values) (string, error) {
	resp, err := c.roundTrip(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", statusError(resp)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("failed to read %s response: %w", path, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	target := c.base.JoinPath(path)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, markTransport(err)
	}
	return resp, nil
}
