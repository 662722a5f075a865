package notification

import (
	"context"
)

// Notifier publishes toasts; implementations must not block the caller
type Notifier interface {
	Notify(ctx context.Context, sessionID string, level Level, message string)
}

// Service defines the notification service interface
type Service interface {
	Notifier

	// Subscribe streams toasts for a session until cleanup is called
	Subscribe(ctx context.Context, sessionID string) (<-chan Toast, func())

	// Drop closes every subscription of an expired session
	Drop(sessionID string)
}
