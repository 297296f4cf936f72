package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dream-social/internal/models"
)

type CommentRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentRepository(db *sqlx.DB, txGetter TxGetter) *CommentRepository {
	return &CommentRepository{db: db, txGetter: txGetter}
}

// Save inserts a comment and fills its created_at.
func (r *CommentRepository) Save(ctx context.Context, comment *models.CommentDB) error {
	const query = `
		INSERT INTO comments (comment_id, dream_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	args := []any{comment.CommentID, comment.DreamID, comment.UserID, comment.Text}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &comment.CreatedAt, query, args...)

	logQuery(query, args, comment.CreatedAt, err)

	return err
}

// ListByDream returns the comments of a dream oldest first, with authors.
func (r *CommentRepository) ListByDream(ctx context.Context, dreamID uuid.UUID) ([]models.Comment, error) {
	const query = `
		SELECT c.comment_id, c.dream_id, c.user_id, c.text, c.created_at,
		       u.user_id AS "user.user_id", u.username AS "user.username", u.full_name AS "user.full_name",
		       u.avatar_url AS "user.avatar_url", u.streak_count AS "user.streak_count"
		FROM comments c
		JOIN users u ON u.user_id = c.user_id
		WHERE c.dream_id = $1
		ORDER BY c.created_at, c.comment_id
	`

	comments := []models.Comment{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &comments, query, dreamID)

	logQuery(query, []any{dreamID}, len(comments), err)

	return comments, err
}
