// Package providers fetches weather, location, news and songs over HTTP.
package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodySize    = 8 << 20

	userAgent      = "Mozilla/5.0"
	acceptLanguage = "uk-UA,uk;q=0.9,en-US;q=0.8,en;q=0.7"
)

// Client is the HTTP plumbing shared by every provider.
type Client struct {
	http *http.Client
	log  domain.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithLogger sets the logger.
func WithLogger(l domain.Logger) Option {
	return func(cl *Client) {
		cl.log = log.Named(l, "providers")
	}
}

// NewClient returns a client with a request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: defaultTimeout},
		log:  log.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches url and returns the body. Non-200 answers are errors.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	c.log.Debug("GET %s", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
