package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

// EventPublisher emits booking outcome events for downstream consumers
// (reminders, notifications). Publishing is fire-and-forget: callers log
// failures but never block a booking on them.
type EventPublisher interface {
	Publish(ctx context.Context, event models.BookingEvent) error
}
