package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3/client"

	"modwall/internal/domain"
)

// maxErrorBody limits how much of a rejection body ends up in an error
const maxErrorBody = 256

// HTTPDeliverer posts envelopes as JSON to a submission endpoint
type HTTPDeliverer struct {
	client   *client.Client
	endpoint string
	timeout  time.Duration
}

// NewHTTPDeliverer creates a deliverer for endpoint
func NewHTTPDeliverer(endpoint string, timeout time.Duration) *HTTPDeliverer {
	return &HTTPDeliverer{
		client:   client.New(),
		endpoint: endpoint,
		timeout:  timeout,
	}
}

// Deliver posts env; anything but a 2xx answer is a failure
func (d *HTTPDeliverer) Deliver(ctx context.Context, env domain.Envelope) error {
	resp, err := d.client.Post(d.endpoint, client.Config{
		Ctx:     ctx,
		Timeout: d.timeout,
		Header: map[string]string{
			"Idempotency-Key": env.ID,
		},
		Body: env,
	})
	if err != nil {
		return fmt.Errorf("failed to post submission %s: %w", env.ID, err)
	}
	defer resp.Close()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		body := string(resp.Body())
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &StatusError{Code: code, Body: body}
	}
	return nil
}

// Close is a no-op; the client holds no resources worth releasing
func (d *HTTPDeliverer) Close() error {
	return nil
}
