package lettermint

import (
	"context"
	"encoding/base64"

	"github.com/google/uuid"

	"github.com/lettermint/lettermint-go/internal/api"
)

// Status is the server-side delivery status of a sent email. Statuses
// describe the message lifecycle on the server and are opaque to the client.
type Status string

// Delivery statuses reported by the API.
const (
	StatusPending     Status = "pending"
	StatusQueued      Status = "queued"
	StatusProcessed   Status = "processed"
	StatusDelivered   Status = "delivered"
	StatusSoftBounced Status = "soft_bounced"
	StatusHardBounced Status = "hard_bounced"
	StatusFailed      Status = "failed"
)

// SendEmailResponse is the parsed result of a send.
type SendEmailResponse struct {
	MessageID string `json:"message_id"`
	Status    Status `json:"status"`
}

// Attachment is a single file attached to an outgoing email. Content holds
// the base64-encoded file bytes.
type Attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// emailPayload is the POST /send request body. Multi-word keys are
// snake_case on the wire.
type emailPayload struct {
	From        string            `json:"from,omitempty"`
	To          []string          `json:"to,omitempty"`
	Subject     string            `json:"subject,omitempty"`
	HTML        string            `json:"html,omitempty"`
	Text        string            `json:"text,omitempty"`
	Cc          []string          `json:"cc,omitempty"`
	Bcc         []string          `json:"bcc,omitempty"`
	ReplyTo     []string          `json:"reply_to,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Attachments []Attachment      `json:"attachments,omitempty"`
	Route       string            `json:"route,omitempty"`
}

// EmailBuilder accumulates an email across chained setter calls and submits
// it with Send. Every setter mutates the builder and returns it, so calls
// chain in any order; each setter except Attach overwrites the field it
// names. The builder performs no local validation — required fields are
// enforced server-side and surface as a ValidationError.
//
//	resp, err := client.Email().
//	    From("orders@example.com").
//	    To("jo@example.com").
//	    Subject("Your receipt").
//	    HTML("<h1>Thanks!</h1>").
//	    Send(ctx)
type EmailBuilder struct {
	client         *api.Client
	payload        emailPayload
	idempotencyKey string
}

// From sets the sender address (RFC 5322 mailbox).
func (b *EmailBuilder) From(from string) *EmailBuilder {
	b.payload.From = from
	return b
}

// To sets the recipient list, replacing any previously set recipients.
func (b *EmailBuilder) To(to ...string) *EmailBuilder {
	b.payload.To = to
	return b
}

// Subject sets the subject line.
func (b *EmailBuilder) Subject(subject string) *EmailBuilder {
	b.payload.Subject = subject
	return b
}

// HTML sets the HTML body. An empty string is ignored rather than clearing
// the field, so a body that has been set cannot be unset.
func (b *EmailBuilder) HTML(html string) *EmailBuilder {
	if html != "" {
		b.payload.HTML = html
	}
	return b
}

// Text sets the plain-text body. An empty string is ignored rather than
// clearing the field, so a body that has been set cannot be unset.
func (b *EmailBuilder) Text(text string) *EmailBuilder {
	if text != "" {
		b.payload.Text = text
	}
	return b
}

// Cc sets the CC list, replacing any previously set value.
func (b *EmailBuilder) Cc(cc ...string) *EmailBuilder {
	b.payload.Cc = cc
	return b
}

// Bcc sets the BCC list, replacing any previously set value.
func (b *EmailBuilder) Bcc(bcc ...string) *EmailBuilder {
	b.payload.Bcc = bcc
	return b
}

// ReplyTo sets the reply-to list, replacing any previously set value.
func (b *EmailBuilder) ReplyTo(replyTo ...string) *EmailBuilder {
	b.payload.ReplyTo = replyTo
	return b
}

// Headers sets custom message headers, replacing any previously set value.
func (b *EmailBuilder) Headers(headers map[string]string) *EmailBuilder {
	b.payload.Headers = headers
	return b
}

// Attach appends an attachment. Content must already be base64-encoded.
// Attachments keep their call order in the payload.
func (b *EmailBuilder) Attach(filename, content string) *EmailBuilder {
	b.payload.Attachments = append(b.payload.Attachments, Attachment{
		Filename: filename,
		Content:  content,
	})
	return b
}

// AttachBytes base64-encodes data and appends it as an attachment.
func (b *EmailBuilder) AttachBytes(filename string, data []byte) *EmailBuilder {
	return b.Attach(filename, base64.StdEncoding.EncodeToString(data))
}

// Route sets the routing key that selects which Lettermint route handles
// the message.
func (b *EmailBuilder) Route(route string) *EmailBuilder {
	b.payload.Route = route
	return b
}

// IdempotencyKey sets the key the server uses to deduplicate retried
// submissions of the same email. The key travels as the Idempotency-Key
// request header, not as part of the payload.
func (b *EmailBuilder) IdempotencyKey(key string) *EmailBuilder {
	b.idempotencyKey = key
	return b
}

// Send submits the accumulated email and returns the parsed response.
func (b *EmailBuilder) Send(ctx context.Context) (*SendEmailResponse, error) {
	var cfg *api.RequestConfig
	if b.idempotencyKey != "" {
		cfg = &api.RequestConfig{
			Headers: map[string]string{"Idempotency-Key": b.idempotencyKey},
		}
	}

	var resp SendEmailResponse
	if err := b.client.Post(ctx, "send", b.payload, &resp, cfg); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}

// NewIdempotencyKey returns a random key suitable for
// EmailBuilder.IdempotencyKey.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
