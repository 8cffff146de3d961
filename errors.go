package lettermint

import (
	"errors"
	"fmt"
	"time"

	"github.com/lettermint/lettermint-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIToken is returned when no API token is provided.
	ErrMissingAPIToken = errors.New("API token is required")

	// ErrUnauthorized is returned when the API token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API token")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// LettermintError is implemented by all SDK errors.
type LettermintError interface {
	error
	LettermintError() // marker method
}

// APIError represents a non-2xx HTTP response from the Lettermint API that
// is neither a ValidationError (422) nor a ClientError (400). Both of those
// specialize this shape: all three carry the status code and the full parsed
// error body.
type APIError struct {
	StatusCode int
	Status     string // reason phrase, e.g. "Internal Server Error"
	Body       map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Status)
}

// LettermintError implements the LettermintError interface.
func (e *APIError) LettermintError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// ValidationError represents a 422 response: the server rejected the payload
// semantics. The caller can fix the input and retry. Name is the server's
// error discriminator, e.g. "DailyLimitExceeded".
type ValidationError struct {
	Name       string
	StatusCode int
	Body       map[string]any
}

func (e *ValidationError) Error() string {
	if msg, ok := e.Body["message"].(string); ok && msg != "" {
		return fmt.Sprintf("validation error %s: %s", e.Name, msg)
	}
	return fmt.Sprintf("validation error %s", e.Name)
}

// LettermintError implements the LettermintError interface.
func (e *ValidationError) LettermintError() {}

// ClientError represents a 400 response: the request was malformed. The
// caller can fix the request and retry.
type ClientError struct {
	StatusCode int
	Message    string
	Body       map[string]any
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client error %d: %s", e.StatusCode, e.Message)
}

// LettermintError implements the LettermintError interface.
func (e *ClientError) LettermintError() {}

// TimeoutError indicates no response arrived within the configured timeout.
// The caller may retry with a longer timeout.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %v", e.Timeout)
}

// LettermintError implements the LettermintError interface.
func (e *TimeoutError) LettermintError() {}

// wrapError converts internal API errors to public errors. Unclassified
// failures (DNS, connection, TLS, malformed error bodies) pass through
// unchanged so callers see the underlying error.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var valErr *api.ValidationError
	if errors.As(err, &valErr) {
		return &ValidationError{
			Name:       valErr.Name,
			StatusCode: valErr.StatusCode,
			Body:       valErr.Body,
		}
	}

	var cliErr *api.ClientError
	if errors.As(err, &cliErr) {
		return &ClientError{
			StatusCode: cliErr.StatusCode,
			Message:    cliErr.Message,
			Body:       cliErr.Body,
		}
	}

	var timeoutErr *api.TimeoutError
	if errors.As(err, &timeoutErr) {
		return &TimeoutError{Timeout: timeoutErr.Timeout}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Status:     apiErr.Status,
			Body:       apiErr.Body,
		}
	}

	return err
}
