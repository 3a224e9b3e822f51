package port

import (
	"context"

	"printflow/internal/domain"
)

// NotificationDispatcher is the sink receiving workflow notifications.
// Delivery, transport, and retries are entirely the implementation's
// concern; the caller treats dispatch as best-effort and at-least-once.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification domain.Notification) error
}
