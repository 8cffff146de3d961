package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError represents a non-2xx HTTP response that is neither a validation
// error (422) nor a client error (400).
type APIError struct {
	StatusCode int
	Status     string // reason phrase, e.g. "Internal Server Error"
	Body       map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Status)
}

// ValidationError represents a 422 response: the server rejected the payload
// semantics. Name is the server's error discriminator.
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

// ClientError represents a 400 response: the request was malformed.
type ClientError struct {
	StatusCode int
	Message    string
	Body       map[string]any
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client error %d: %s", e.StatusCode, e.Message)
}

// TimeoutError indicates no response arrived within the effective timeout.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %v", e.Timeout)
}

// classifyResponse maps a non-2xx response to a typed error. The body is
// decoded first; a body that fails to decode as JSON propagates the decode
// error unclassified.
func classifyResponse(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var body map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &body); err != nil {
			return err
		}
	}

	switch resp.StatusCode {
	case http.StatusUnprocessableEntity:
		name := "ValidationError"
		if s, ok := body["error"].(string); ok && s != "" {
			name = s
		}
		return &ValidationError{Name: name, StatusCode: resp.StatusCode, Body: body}
	case http.StatusBadRequest:
		message := "Unknown client error"
		if s, ok := body["error"].(string); ok && s != "" {
			message = s
		}
		return &ClientError{StatusCode: resp.StatusCode, Message: message, Body: body}
	default:
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}
}
