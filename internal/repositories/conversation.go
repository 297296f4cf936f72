package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dream-social/internal/models"
)

type ConversationRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewConversationRepository(db *sqlx.DB, txGetter TxGetter) *ConversationRepository {
	return &ConversationRepository{db: db, txGetter: txGetter}
}

// GetOrCreate returns the owner's conversation row with the other user, creating it if missing.
func (r *ConversationRepository) GetOrCreate(ctx context.Context, ownerID, otherUserID uuid.UUID) (*models.ConversationDB, error) {
	const query = `
		INSERT INTO conversations (conversation_id, owner_id, other_user_id, last_message, unread_count, created_at)
		VALUES ($1, $2, $3, '', 0, NOW())
		ON CONFLICT (owner_id, other_user_id)
		DO UPDATE SET owner_id = conversations.owner_id
		RETURNING conversation_id, owner_id, other_user_id, last_message, last_message_at, unread_count, created_at
	`
	args := []any{uuid.New(), ownerID, otherUserID}

	var conv models.ConversationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &conv, query, args...)

	logQuery(query, args, conv.ConversationID, err)

	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListForOwner returns the owner's conversations with the other participant's profile,
// most recent activity first.
func (r *ConversationRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Conversation, error) {
	const query = `
		SELECT c.conversation_id, c.owner_id, c.other_user_id, c.last_message, c.last_message_at,
		       c.unread_count, c.created_at,
		       u.user_id AS "other_user.user_id", u.username AS "other_user.username",
		       u.full_name AS "other_user.full_name", u.avatar_url AS "other_user.avatar_url",
		       u.streak_count AS "other_user.streak_count"
		FROM conversations c
		JOIN users u ON u.user_id = c.other_user_id
		WHERE c.owner_id = $1
		ORDER BY c.last_message_at DESC NULLS LAST, c.created_at DESC
	`

	convs := []models.Conversation{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &convs, query, ownerID)

	logQuery(query, []any{ownerID}, len(convs), err)

	return convs, err
}

// UpdateLastMessage stores the latest message preview and bumps the unread counter when requested.
func (r *ConversationRepository) UpdateLastMessage(
	ctx context.Context,
	conversationID uuid.UUID,
	content string,
	at time.Time,
	incrementUnread bool,
) error {
	const query = `
		UPDATE conversations
		SET last_message = $2,
		    last_message_at = $3,
		    unread_count = unread_count + CASE WHEN $4::boolean THEN 1 ELSE 0 END
		WHERE conversation_id = $1
	`
	args := []any{conversationID, content, at, incrementUnread}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, rowsAffected(res), err)

	return err
}

// ResetUnread sets the unread counter of a conversation row to zero.
func (r *ConversationRepository) ResetUnread(ctx context.Context, conversationID uuid.UUID) error {
	const query = `UPDATE conversations SET unread_count = 0 WHERE conversation_id = $1 AND unread_count <> 0`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, conversationID)

	logQuery(query, []any{conversationID}, rowsAffected(res), err)

	return err
}
