package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LikeRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLikeRepository(db *sqlx.DB, txGetter TxGetter) *LikeRepository {
	return &LikeRepository{db: db, txGetter: txGetter}
}

// Save inserts a like; a concurrent duplicate is ignored. Reports whether a row was created.
func (r *LikeRepository) Save(ctx context.Context, userID, dreamID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO likes (user_id, dream_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, dream_id) DO NOTHING
	`
	args := []any{userID, dreamID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n > 0, err
}

// Delete removes a like and reports whether it existed.
func (r *LikeRepository) Delete(ctx context.Context, userID, dreamID uuid.UUID) (bool, error) {
	const query = `DELETE FROM likes WHERE user_id = $1 AND dream_id = $2`
	args := []any{userID, dreamID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n > 0, err
}

// CountByDream returns the number of likes of a dream.
func (r *LikeRepository) CountByDream(ctx context.Context, dreamID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE dream_id = $1`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, dreamID)

	logQuery(query, []any{dreamID}, count, err)

	return count, err
}
