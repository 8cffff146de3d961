package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

const (
	// DefaultBaseURL is the production Lettermint API endpoint.
	DefaultBaseURL = "https://api.lettermint.co/v1"
	// DefaultTimeout is the per-request timeout used when none is configured.
	DefaultTimeout = 30 * time.Second
)

// Client is the HTTP API client.
type Client struct {
	baseURL        string // normalized to end with "/"
	apiToken       string
	timeout        time.Duration
	httpClient     *http.Client
	defaultHeaders http.Header // frozen at construction
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// New creates a new API client.
func New(apiToken string, opts ...Option) (*Client, error) {
	if apiToken == "" {
		return nil, fmt.Errorf("API token is required")
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		apiToken:   apiToken,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", c.baseURL)
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}

	if c.timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %v", c.timeout)
	}

	c.defaultHeaders = http.Header{}
	c.defaultHeaders.Set("Content-Type", "application/json")
	c.defaultHeaders.Set("Accept", "application/json")
	c.defaultHeaders.Set("X-Lettermint-Token", c.apiToken)
	c.defaultHeaders.Set("User-Agent", fmt.Sprintf("lettermint-go/%s (%s)", Version, runtime.Version()))

	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the configured per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, result any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodGet, path, nil, result, cfg)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, result any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodPost, path, body, result, cfg)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body, result any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodPut, path, body, result, cfg)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, result any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodDelete, path, nil, result, cfg)
}

// buildURL joins the base URL with path and appends query parameters in the
// order supplied. Duplicate keys are preserved as repeated pairs.
func (c *Client) buildURL(path string, params []Param) string {
	u := c.baseURL + strings.TrimPrefix(path, "/")
	if len(params) == 0 {
		return u
	}

	var q strings.Builder
	for i, p := range params {
		if i > 0 {
			q.WriteByte('&')
		}
		q.WriteString(url.QueryEscape(p.Key))
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(p.Value))
	}
	return u + "?" + q.String()
}

func (c *Client) do(ctx context.Context, method, path string, body, result any, cfg *RequestConfig) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	timeout := c.timeout
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	// The deferred cancel releases the deadline timer on both the success
	// and failure paths.
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var params []Param
	if cfg != nil {
		params = cfg.Params
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, params), bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header = c.defaultHeaders.Clone()
	if cfg != nil {
		for k, v := range cfg.Headers {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &TimeoutError{Timeout: timeout}
		}
		// DNS, connection and TLS failures propagate unwrapped.
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			if errors.Is(err, io.EOF) {
				return nil // empty body on 2xx
			}
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
