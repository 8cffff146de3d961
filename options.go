package lettermint

import (
	"net/http"
	"time"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL overrides the default API endpoint. The URL must be absolute;
// a trailing slash is normalized. All subsequent calls from the client use
// the override.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client, e.g. to configure proxies or
// transport-level TLS settings.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}
