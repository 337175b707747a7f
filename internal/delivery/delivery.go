// Package delivery hands finished configurations to the back office.
// The configurator only needs to know whether a delivery succeeded.
package delivery

import (
	"context"
	"fmt"
	"time"

	"modwall/internal/config"
	"modwall/internal/domain"
)

// Deliverer sends one envelope somewhere durable
type Deliverer interface {
	Deliver(ctx context.Context, env domain.Envelope) error
	Close() error
}

// StatusError is a non-2xx answer from the submission endpoint
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("submission rejected with status %d", e.Code)
	}
	return fmt.Sprintf("submission rejected with status %d: %s", e.Code, e.Body)
}

// New picks HTTP delivery when an endpoint is configured and the local outbox otherwise
func New(cfg config.DeliveryConfig) (Deliverer, error) {
	if cfg.Endpoint != "" {
		return NewHTTPDeliverer(cfg.Endpoint, Timeout(cfg)), nil
	}
	outbox, err := OpenOutbox(cfg.OutboxPath)
	if err != nil {
		return nil, err
	}
	return outbox, nil
}

// Timeout converts the configured delivery timeout
func Timeout(cfg config.DeliveryConfig) time.Duration {
	if cfg.TimeoutSeconds <= 0 {
		return config.DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}
