// Package httpclient wraps resty with the retry and timeout behavior the
// Jikan API needs. Retries live here, in the transport layer; the entity
// hydration above it never retries anything.
package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client wraps resty.Client with retry logic and timeout handling.
type Client struct {
	resty      *resty.Client
	maxRetries int
	timeout    time.Duration
	debug      bool
	logger     *slog.Logger
}

// Config holds configuration for the HTTP client.
type Config struct {
	Timeout    time.Duration
	MaxRetries int
	UserAgent  string
	Debug      bool
	Logger     *slog.Logger
}

// DefaultConfig returns sensible defaults for the HTTP client.
func DefaultConfig() Config {
	return Config{
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		UserAgent:  "tokage/1.0",
	}
}

// New creates an HTTP client with the given configuration.
func New(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.UserAgent == "" {
		config.UserAgent = "tokage/1.0"
	}

	restyClient := resty.New().
		SetTimeout(config.Timeout).
		SetRetryCount(config.MaxRetries).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("User-Agent", config.UserAgent).
		SetHeader("Accept", "application/json")

	// Retry on network errors, 5xx server errors and 429 rate limiting.
	restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return r.StatusCode() >= 500 || r.StatusCode() == 429
	})

	client := &Client{
		resty:      restyClient,
		maxRetries: config.MaxRetries,
		timeout:    config.Timeout,
		debug:      config.Debug,
		logger:     config.Logger,
	}

	if config.Debug && config.Logger != nil {
		restyClient.OnBeforeRequest(func(c *resty.Client, r *resty.Request) error {
			client.logRequest(r)
			return nil
		})
		restyClient.OnAfterResponse(func(c *resty.Client, r *resty.Response) error {
			client.logResponse(r)
			return nil
		})
	}

	return client
}

// Get performs a GET request with context support.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*resty.Response, error) {
	req := c.resty.R().SetContext(ctx)

	for key, value := range headers {
		req.SetHeader(key, value)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET request failed for %s: %w", url, err)
	}

	if resp.StatusCode() >= 400 {
		return resp, fmt.Errorf("HTTP error %d for %s: %s", resp.StatusCode(), url, resp.String())
	}

	return resp, nil
}

// SetHeader sets a default header for all requests.
func (c *Client) SetHeader(key, value string) {
	c.resty.SetHeader(key, value)
}

// Timeout returns the configured timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// MaxRetries returns the configured max retries.
func (c *Client) MaxRetries() int {
	return c.maxRetries
}

func (c *Client) logRequest(r *resty.Request) {
	if c.logger == nil {
		return
	}
	c.logger.Debug("HTTP request",
		"method", r.Method,
		"url", r.URL,
	)
}

func (c *Client) logResponse(r *resty.Response) {
	if c.logger == nil {
		return
	}
	c.logger.Debug("HTTP response",
		"status", r.StatusCode(),
		"url", r.Request.URL,
		"time", r.Time(),
	)
}
