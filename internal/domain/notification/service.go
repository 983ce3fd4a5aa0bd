package notification

import "context"

// Message is a pending notification for one user; the service persists it
// and pushes it over SSE.
type Message struct {
	UserID     string
	CompanyID  string
	Type       Type
	Title      string
	Body       string
	ResourceID *string
}

type NotificationService interface {
	// NotifyBatch persists the messages and pushes each to its user's SSE
	// stream. Failures are logged, never propagated to the caller's
	// business flow.
	NotifyBatch(ctx context.Context, messages []Message)

	List(ctx context.Context, filter ListFilter) (ListResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}
