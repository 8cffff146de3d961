package lettermint

import (
	"github.com/lettermint/lettermint-go/internal/api"
)

// Version is the SDK version reported to the API in the User-Agent header.
const Version = api.Version

// Client is the top-level Lettermint client.
//
// A Client holds only configuration frozen at construction, so a single
// instance is safe for concurrent use across goroutines.
type Client struct {
	api *api.Client
}

// New creates a new Lettermint client with the given API token.
func New(apiToken string, opts ...Option) (*Client, error) {
	if apiToken == "" {
		return nil, ErrMissingAPIToken
	}

	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var apiOpts []api.Option
	if cfg.baseURL != "" {
		apiOpts = append(apiOpts, api.WithBaseURL(cfg.baseURL))
	}
	if cfg.timeout != 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}

	apiClient, err := api.New(apiToken, apiOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}

// Email starts a new email builder. Builders are single-use: create one per
// logical email and discard it after Send.
func (c *Client) Email() *EmailBuilder {
	return &EmailBuilder{client: c.api}
}
