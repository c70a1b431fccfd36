package interfaces

import (
	"context"

	"osms-portal/internal/notification"
)

// INotificationDispatcher abstracts the notification fan-out. Notify never
// returns an error; the result is an observability report.

type INotificationDispatcher interface {
	Notify(ctx context.Context, ev notification.Event) notification.DispatchResult
}
