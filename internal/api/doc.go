// Package api provides HTTP client functionality for communicating with the
// Lettermint API. It handles authentication, request/response serialization,
// per-request timeouts, and classification of error responses.
//
// # Client Creation
//
// Create a client with [New] and functional options:
//
//	client, err := api.New("your-token",
//	    api.WithBaseURL("https://api.lettermint.co/v1"),
//	    api.WithTimeout(10*time.Second),
//	)
//
// The API token is sent via the X-Lettermint-Token header on every request.
// Default headers (content type, accept, token, user agent) are computed once
// at construction; per-request headers from [RequestConfig] are merged on top
// and win on key collision.
//
// # Timeouts
//
// Every request runs under a context deadline. When no response arrives
// within the configured timeout the in-flight request is cancelled and the
// call fails with a [TimeoutError] carrying the effective duration. A
// per-request timeout can be set through [RequestConfig.Timeout].
//
// # Error Classification
//
// Non-2xx responses are decoded and classified:
//
//   - 422 → [ValidationError] with the server's error discriminator.
//   - 400 → [ClientError] with a message derived from the error body.
//   - any other status → [APIError] with the status code and reason phrase.
//
// Network-level failures (DNS, connection refused, TLS) propagate unwrapped.
// The client never retries a request.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. All configuration is frozen
// at construction and no per-call state is kept on the client.
package api
