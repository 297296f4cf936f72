package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dream-social/internal/models"
)

type MessageRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMessageRepository(db *sqlx.DB, txGetter TxGetter) *MessageRepository {
	return &MessageRepository{db: db, txGetter: txGetter}
}

// Save inserts a message and fills its created_at.
func (r *MessageRepository) Save(ctx context.Context, msg *models.MessageDB) error {
	const query = `
		INSERT INTO messages (message_id, conversation_id, sender_id, receiver_id, content, read, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING created_at
	`
	args := []any{msg.MessageID, msg.ConversationID, msg.SenderID, msg.ReceiverID, msg.Content}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &msg.CreatedAt, query, args...)

	logQuery(query, args, msg.CreatedAt, err)

	return err
}

// ListBetween returns every message exchanged by the two users, oldest first, with sender profiles.
func (r *MessageRepository) ListBetween(ctx context.Context, userA, userB uuid.UUID) ([]models.Message, error) {
	const query = `
		SELECT m.message_id, m.conversation_id, m.sender_id, m.receiver_id, m.content, m.read, m.created_at,
		       u.user_id AS "sender.user_id", u.username AS "sender.username", u.full_name AS "sender.full_name",
		       u.avatar_url AS "sender.avatar_url", u.streak_count AS "sender.streak_count"
		FROM messages m
		JOIN users u ON u.user_id = m.sender_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at, m.message_id
	`
	args := []any{userA, userB}

	msgs := []models.Message{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &msgs, query, args...)

	logQuery(query, args, len(msgs), err)

	return msgs, err
}

// MarkRead flags unread messages from sender to receiver as read.
func (r *MessageRepository) MarkRead(ctx context.Context, senderID, receiverID uuid.UUID) (int64, error) {
	const query = `
		UPDATE messages SET read = TRUE
		WHERE sender_id = $1 AND receiver_id = $2 AND read = FALSE
	`
	args := []any{senderID, receiverID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}
