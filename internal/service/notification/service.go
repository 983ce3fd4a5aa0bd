package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/notification"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/sse"
)

type NotificationServiceImpl struct {
	notification.NotificationRepository
	hub    *sse.Hub
	logger *slog.Logger
}

func NewNotificationService(
	notificationRepo notification.NotificationRepository,
	hub *sse.Hub,
	logger *slog.Logger,
) notification.NotificationService {
	return &NotificationServiceImpl{
		NotificationRepository: notificationRepo,
		hub:                    hub,
		logger:                 logger,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func toResponse(n notification.Notification) notification.NotificationResponse {
	resp := notification.NotificationResponse{
		ID:         n.ID,
		Type:       string(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		ResourceID: n.ResourceID,
		Read:       n.IsRead(),
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		readAt := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &readAt
	}
	return resp
}

// NotifyBatch implements notification.NotificationService. Persistence and
// SSE delivery are both best effort: a payroll run must not fail because a
// notification could not be written.
func (s *NotificationServiceImpl) NotifyBatch(ctx context.Context, messages []notification.Message) {
	if len(messages) == 0 {
		return
	}

	rows := make([]notification.Notification, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, notification.Notification{
			UserID:     m.UserID,
			CompanyID:  m.CompanyID,
			Type:       m.Type,
			Title:      m.Title,
			Message:    m.Body,
			ResourceID: m.ResourceID,
		})
	}

	if err := s.NotificationRepository.CreateBatch(ctx, rows); err != nil {
		s.logger.Error("failed to persist notifications",
			slog.Int("count", len(rows)),
			slog.Any("error", err),
		)
	}

	for _, m := range messages {
		payload, err := json.Marshal(map[string]any{
			"type":        string(m.Type),
			"title":       m.Title,
			"message":     m.Body,
			"resource_id": m.ResourceID,
		})
		if err != nil {
			continue
		}
		s.hub.Publish(m.UserID, sse.Event{Name: "notification", Data: string(payload)})
	}
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context, filter notification.ListFilter) (notification.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return notification.ListResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return notification.ListResponse{}, err
	}

	rows, totalCount, err := s.NotificationRepository.ListByUserID(ctx, userID, filter)
	if err != nil {
		return notification.ListResponse{}, err
	}

	unreadCount, err := s.NotificationRepository.CountUnread(ctx, userID)
	if err != nil {
		return notification.ListResponse{}, err
	}

	resp := notification.ListResponse{
		TotalCount:    totalCount,
		UnreadCount:   unreadCount,
		Page:          filter.Page,
		Limit:         filter.Limit,
		Notifications: make([]notification.NotificationResponse, 0, len(rows)),
	}
	for _, n := range rows {
		resp.Notifications = append(resp.Notifications, toResponse(n))
	}

	return resp, nil
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.NotificationRepository.MarkRead(ctx, id, userID)
}

// MarkAllRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.NotificationRepository.MarkAllRead(ctx, userID)
}
