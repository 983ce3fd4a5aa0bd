package notification

import "context"

// NotificationRepository defines data access methods for notifications.
type NotificationRepository interface {
	// CreateBatch inserts notifications for many users in one round trip;
	// payroll completion fans out to every employee this way.
	CreateBatch(ctx context.Context, notifications []Notification) error

	ListByUserID(ctx context.Context, userID string, filter ListFilter) ([]Notification, int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id string, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
