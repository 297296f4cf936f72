package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dream-social/internal/models"
)

type NotificationRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewNotificationRepository(db *sqlx.DB, txGetter TxGetter) *NotificationRepository {
	return &NotificationRepository{db: db, txGetter: txGetter}
}

// Save inserts a notification and fills its created_at.
func (r *NotificationRepository) Save(ctx context.Context, n *models.NotificationDB) error {
	const query = `
		INSERT INTO notifications (notification_id, type, sender_id, receiver_id, dream_id, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING created_at
	`
	args := []any{n.NotificationID, n.Type, n.SenderID, n.ReceiverID, n.DreamID, n.Message}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n.CreatedAt, query, args...)

	logQuery(query, args, n.CreatedAt, err)

	return err
}

// ListForReceiver returns the latest notifications addressed to the user, newest first.
func (r *NotificationRepository) ListForReceiver(ctx context.Context, receiverID uuid.UUID, limit int) ([]models.Notification, error) {
	const query = `
		SELECT n.notification_id, n.type, n.sender_id, n.receiver_id, n.dream_id, n.message, n.read, n.created_at,
		       u.user_id AS "sender.user_id", u.username AS "sender.username", u.full_name AS "sender.full_name",
		       u.avatar_url AS "sender.avatar_url", u.streak_count AS "sender.streak_count"
		FROM notifications n
		JOIN users u ON u.user_id = n.sender_id
		WHERE n.receiver_id = $1
		ORDER BY n.created_at DESC, n.notification_id DESC
		LIMIT $2
	`
	args := []any{receiverID, limit}

	notifications := []models.Notification{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &notifications, query, args...)

	logQuery(query, args, len(notifications), err)

	return notifications, err
}

// MarkRead flags one notification of the receiver as read.
// Reports false when no such notification belongs to the receiver.
func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, receiverID uuid.UUID) (bool, error) {
	const query = `UPDATE notifications SET read = TRUE WHERE notification_id = $1 AND receiver_id = $2`
	args := []any{notificationID, receiverID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n > 0, err
}

// MarkAllRead flags every unread notification of the receiver as read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	const query = `UPDATE notifications SET read = TRUE WHERE receiver_id = $1 AND read = FALSE`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, receiverID)
	n := rowsAffected(res)

	logQuery(query, []any{receiverID}, n, err)

	return n, err
}
