package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/models"
)

//go:generate mockgen -source=notification.go -destination=notification_mock.go -package=services

// notificationListLimit is how many notifications are listed at most.
const notificationListLimit = 50

// NotificationStore defines notification read and update operations.
type NotificationStore interface {
	ListForReceiver(ctx context.Context, receiverID uuid.UUID, limit int) ([]models.Notification, error) // Returns the latest notifications
	MarkRead(ctx context.Context, notificationID, receiverID uuid.UUID) (bool, error)                    // Reports false if not the receiver's
	MarkAllRead(ctx context.Context, receiverID uuid.UUID) (int64, error)                                // Flags every unread notification
}

// NotificationSubscriber streams live notifications.
type NotificationSubscriber interface {
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []byte, error) // Closed when ctx is done
}

// NotificationService handles the notification inbox.
type NotificationService struct {
	store      NotificationStore
	subscriber NotificationSubscriber
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(store NotificationStore, subscriber NotificationSubscriber) *NotificationService {
	return &NotificationService{store: store, subscriber: subscriber}
}

// List returns the latest notifications of the user, newest first.
func (svc *NotificationService) List(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	notifications, err := svc.store.ListForReceiver(ctx, userID, notificationListLimit)
	if err != nil {
		logger.Log.Errorw("failed to list notifications", "userID", userID, "error", err)
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks one of the user's notifications as read.
func (svc *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	ok, err := svc.store.MarkRead(ctx, notificationID, userID)
	if err != nil {
		logger.Log.Errorw("failed to mark notification read", "notificationID", notificationID, "error", err)
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks all of the user's notifications as read.
func (svc *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if _, err := svc.store.MarkAllRead(ctx, userID); err != nil {
		logger.Log.Errorw("failed to mark all notifications read", "userID", userID, "error", err)
		return err
	}
	return nil
}

// Subscribe streams the user's new notifications as JSON until ctx is done.
func (svc *NotificationService) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []byte, error) {
	ch, err := svc.subscriber.Subscribe(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to subscribe to notifications", "userID", userID, "error", err)
		return nil, err
	}
	return ch, nil
}
