package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/models"
)

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=services

// Notification messages
const (
	messageLiked     = "liked your dream"
	messageFollowed  = "started following you"
	messageCommented = "commented on your dream"
	messageMatched   = "Your dream matched! You both dreamed of similar things."
)

// NotificationWriter persists notifications.
type NotificationWriter interface {
	Save(ctx context.Context, n *models.NotificationDB) error // Inserts a notification
}

// NotificationPublisher pushes notifications to live subscribers.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *models.Notification) error // Publishes to the receiver's channel
}

// UserGetter loads a single user.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) // Returns nil if the user does not exist
}

// Notifier stores a notification and pushes it to the receiver.
// Pushing is best effort; a nil publisher disables it.
type Notifier struct {
	writer    NotificationWriter
	publisher NotificationPublisher
	users     UserGetter
}

// NewNotifier creates a new Notifier instance.
func NewNotifier(writer NotificationWriter, publisher NotificationPublisher, users UserGetter) *Notifier {
	return &Notifier{writer: writer, publisher: publisher, users: users}
}

// Notify creates a notification of the given type from sender to receiver.
// Self-notifications are skipped.
func (n *Notifier) Notify(
	ctx context.Context,
	notificationType string,
	senderID, receiverID uuid.UUID,
	dreamID *uuid.UUID,
	message string,
) error {
	if senderID == receiverID {
		return nil
	}

	notification := &models.NotificationDB{
		NotificationID: uuid.New(),
		Type:           notificationType,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		DreamID:        dreamID,
		Message:        message,
	}

	if err := n.writer.Save(ctx, notification); err != nil {
		logger.Log.Errorw("failed to save notification", "type", notificationType, "receiverID", receiverID, "error", err)
		return err
	}

	n.push(ctx, notification)
	return nil
}

func (n *Notifier) push(ctx context.Context, notification *models.NotificationDB) {
	if n.publisher == nil {
		return
	}

	payload := &models.Notification{NotificationDB: *notification}
	if n.users != nil {
		sender, err := n.users.GetByID(ctx, notification.SenderID)
		if err != nil {
			logger.Log.Warnw("failed to load notification sender", "senderID", notification.SenderID, "error", err)
		} else if sender != nil {
			payload.Sender = summaryOf(sender)
		}
	}

	if err := n.publisher.Publish(ctx, payload); err != nil {
		logger.Log.Warnw("failed to push notification", "notificationID", notification.NotificationID, "error", err)
	}
}

func summaryOf(u *models.UserDB) models.UserSummary {
	return models.UserSummary{
		UserID:      u.UserID,
		Username:    u.Username,
		FullName:    u.FullName,
		AvatarURL:   u.AvatarURL,
		StreakCount: u.StreakCount,
	}
}
