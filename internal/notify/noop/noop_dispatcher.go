package noop

import (
	"context"
	"log"

	"printflow/internal/domain"
	"printflow/internal/port"
)

type noopDispatcher struct{}

// NewNoopDispatcher creates a NotificationDispatcher that only logs, for
// local development and tests.
func NewNoopDispatcher() port.NotificationDispatcher {
	return &noopDispatcher{}
}

func (d *noopDispatcher) Dispatch(_ context.Context, n domain.Notification) error {
	log.Printf("[NOOP NOTIFY] %s dossier=%s roles=%v users=%d: %s",
		n.Type, n.OrderNumber, n.TargetRoles, len(n.TargetUserIDs), n.Message)
	return nil
}
