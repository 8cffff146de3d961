package lettermint

import (
	"context"
	"time"
)

// Domain is a sending domain registered with the account.
type Domain struct {
	ID        string    `json:"id"`
	Domain    string    `json:"domain"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Domains lists the sending domains for the account.
func (c *Client) Domains(ctx context.Context) ([]Domain, error) {
	var resp struct {
		Domains []Domain `json:"domains"`
	}
	if err := c.api.Get(ctx, "domains", &resp, nil); err != nil {
		return nil, wrapError(err)
	}
	return resp.Domains, nil
}
