// Package lettermint provides a Go client SDK for Lettermint, a
// transactional email delivery API.
//
// Emails are composed with a fluent builder and submitted with a single
// terminal Send call:
//
//	client, err := lettermint.New(os.Getenv("LETTERMINT_TOKEN"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Email().
//	    From("orders@example.com").
//	    To("jo@example.com").
//	    Subject("Your receipt").
//	    HTML("<h1>Thanks for your order!</h1>").
//	    IdempotencyKey(lettermint.NewIdempotencyKey()).
//	    Send(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(resp.MessageID, resp.Status)
//
// Failures surface as typed errors. A 422 means the server rejected the
// payload; inspect the discriminator to react to specific rejections:
//
//	var valErr *lettermint.ValidationError
//	if errors.As(err, &valErr) && valErr.Name == "DailyLimitExceeded" {
//	    // back off until tomorrow
//	}
//
// The SDK never retries: every call is fire-once, and every failure is the
// caller's to handle.
package lettermint
