package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type FollowRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFollowRepository(db *sqlx.DB, txGetter TxGetter) *FollowRepository {
	return &FollowRepository{db: db, txGetter: txGetter}
}

// Exists reports whether followerID follows followingID.
func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`
	args := []any{followerID, followingID}

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, args...)

	logQuery(query, args, exists, err)

	return exists, err
}

// Save creates the follow edge and reports whether it was new.
func (r *FollowRepository) Save(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO follows (follower_id, following_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, following_id) DO NOTHING
	`
	args := []any{followerID, followingID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n > 0, err
}

// Delete removes the follow edge and reports whether it existed.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`
	args := []any{followerID, followingID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n > 0, err
}
