package lettermint

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

// newTestClient returns a client pointed at a httptest server and the
// server itself. The handler is invoked for every request.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New("test-token", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

// sendOK responds to POST /send with a fixed queued response and captures
// the request into the given pointers when they are non-nil.
func sendOK(t *testing.T, gotBody *map[string]any, gotHeader *http.Header) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send" {
			t.Errorf("path = %s, want /send", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if gotHeader != nil {
			*gotHeader = r.Header.Clone()
		}
		if gotBody != nil {
			data, err := io.ReadAll(r.Body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			if err := json.Unmarshal(data, gotBody); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message_id": "msg_123",
			"status":     "queued",
		})
	}
}

func TestEmailBuilder_Send(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, sendOK(t, &body, nil))

	resp, err := client.Email().
		From("orders@example.com").
		To("jo@example.com").
		Subject("Your receipt").
		HTML("<h1>Thanks!</h1>").
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if resp.MessageID != "msg_123" {
		t.Errorf("MessageID = %s, want msg_123", resp.MessageID)
	}
	if resp.Status != StatusQueued {
		t.Errorf("Status = %s, want %s", resp.Status, StatusQueued)
	}

	if body["from"] != "orders@example.com" {
		t.Errorf("from = %v, want orders@example.com", body["from"])
	}
	if body["subject"] != "Your receipt" {
		t.Errorf("subject = %v, want Your receipt", body["subject"])
	}
	if body["html"] != "<h1>Thanks!</h1>" {
		t.Errorf("html = %v", body["html"])
	}
}

func TestEmailBuilder_SettersReplace(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, sendOK(t, &body, nil))

	_, err := client.Email().
		From("first@example.com").
		From("second@example.com").
		To("a@example.com", "b@example.com").
		To("c@example.com").
		Subject("one").
		Subject("two").
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if body["from"] != "second@example.com" {
		t.Errorf("from = %v, want last value set", body["from"])
	}
	if body["subject"] != "two" {
		t.Errorf("subject = %v, want two", body["subject"])
	}
	to, _ := body["to"].([]any)
	if !reflect.DeepEqual(to, []any{"c@example.com"}) {
		t.Errorf("to = %v, want [c@example.com] (replacement, not union)", to)
	}
}

func TestEmailBuilder_AttachAppendsInOrder(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, sendOK(t, &body, nil))

	_, err := client.Email().
		From("a@example.com").
		To("b@example.com").
		Subject("s").
		Attach("f1", "c1").
		Attach("f2", "c2").
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	want := []any{
		map[string]any{"filename": "f1", "content": "c1"},
		map[string]any{"filename": "f2", "content": "c2"},
	}
	if !reflect.DeepEqual(body["attachments"], want) {
		t.Errorf("attachments = %v, want %v", body["attachments"], want)
	}
}

func TestEmailBuilder_AttachBytes(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, sendOK(t, &body, nil))

	_, err := client.Email().
		From("a@example.com").
		To("b@example.com").
		Subject("s").
		AttachBytes("hello.txt", []byte("hello")).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	attachments, _ := body["attachments"].([]any)
	if len(attachments) != 1 {
		t.Fatalf("attachments = %v, want one entry", body["attachments"])
	}
	first, _ := attachments[0].(map[string]any)
	if first["content"] != "aGVsbG8=" {
		t.Errorf("content = %v, want base64 of hello", first["content"])
	}
}

func TestEmailBuilder_BodySetOrIgnore(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, sendOK(t, &body, nil))

	_, err := client.Email().
		From("a@example.com").
		To("b@example.com").
		Subject("s").
		HTML("<p>x</p>").
		HTML("").
		Text("plain").
		Text("").
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if body["html"] != "<p>x</p>" {
		t.Errorf("html = %v, want <p>x</p> (empty set is a no-op)", body["html"])
	}
	if body["text"] != "plain" {
		t.Errorf("text = %v, want plain (empty set is a no-op)", body["text"])
	}
}

func TestEmailBuilder_IdempotencyKeyHeader(t *testing.T) {
	var header http.Header
	client := newTestClient(t, sendOK(t, nil, &header))

	_, err := client.Email().
		From("a@example.com").
		To("b@example.com").
		Subject("s").
		IdempotencyKey("k").
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if got := header.Get("Idempotency-Key"); got != "k" {
		t.Errorf("Idempotency-Key = %q, want k", got)
	}
}

func TestEmailBuilder_NoIdempotencyKeyHeaderByDefault(t *testing.T) {
	var header http.Header
	client := newTestClient(t, sendOK(t, nil, &header))

	_, err := client.Email().
		From("a@example.com").
		To("b@example.com").
		Subject("s").
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if _, ok := header["Idempotency-Key"]; ok {
		t.Errorf("Idempotency-Key header present, want absent")
	}
}

func TestEmailBuilder_FullChainMatchesLiteral(t *testing.T) {
	builder := &EmailBuilder{}
	builder.
		From("a@example.com").
		To("b@example.com", "c@example.com").
		Subject("s").
		HTML("<p>x</p>").
		Text("x").
		Cc("cc@example.com").
		Bcc("bcc@example.com").
		ReplyTo("reply@example.com").
		Headers(map[string]string{"X-Campaign": "spring"}).
		Attach("f1", "c1").
		Route("transactional")

	literal := emailPayload{
		From:        "a@example.com",
		To:          []string{"b@example.com", "c@example.com"},
		Subject:     "s",
		HTML:        "<p>x</p>",
		Text:        "x",
		Cc:          []string{"cc@example.com"},
		Bcc:         []string{"bcc@example.com"},
		ReplyTo:     []string{"reply@example.com"},
		Headers:     map[string]string{"X-Campaign": "spring"},
		Attachments: []Attachment{{Filename: "f1", Content: "c1"}},
		Route:       "transactional",
	}

	got, err := json.Marshal(builder.payload)
	if err != nil {
		t.Fatalf("marshal builder payload: %v", err)
	}
	want, err := json.Marshal(literal)
	if err != nil {
		t.Fatalf("marshal literal payload: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("builder JSON = %s, want %s", got, want)
	}
}

func TestEmailBuilder_SendValidationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"DailyLimitExceeded","message":"daily quota reached"}`))
	})

	_, err := client.Email().
		From("a@example.com").
		To("b@example.com").
		Subject("s").
		Send(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if valErr.Name != "DailyLimitExceeded" {
		t.Errorf("Name = %s, want DailyLimitExceeded", valErr.Name)
	}
	if valErr.StatusCode != 422 {
		t.Errorf("StatusCode = %d, want 422", valErr.StatusCode)
	}
	if valErr.Body["message"] != "daily quota reached" {
		t.Errorf("Body[message] = %v, want original body attached", valErr.Body["message"])
	}
}

func TestEmailBuilder_SendClientError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"InvalidRequest"}`))
	})

	_, err := client.Email().
		From("a@example.com").
		To("b@example.com").
		Subject("s").
		Send(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var cliErr *ClientError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected ClientError, got %T: %v", err, err)
	}
	if cliErr.StatusCode != 400 {
		t.Errorf("StatusCode = %d, want 400", cliErr.StatusCode)
	}
	if cliErr.Body["error"] != "InvalidRequest" {
		t.Errorf("Body[error] = %v, want original body attached", cliErr.Body["error"])
	}
}

func TestEmailBuilder_NoLocalValidation(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, sendOK(t, &body, nil))

	// An empty builder still posts; required fields are enforced server-side.
	if _, err := client.Email().Send(context.Background()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(body) != 0 {
		t.Errorf("body = %v, want empty payload", body)
	}
}

func TestNewIdempotencyKey(t *testing.T) {
	a := NewIdempotencyKey()
	b := NewIdempotencyKey()
	if a == "" || b == "" {
		t.Fatal("NewIdempotencyKey() returned an empty key")
	}
	if a == b {
		t.Error("NewIdempotencyKey() returned duplicate keys")
	}
}
