package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dream-social/internal/models"
)

type MatchRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMatchRepository(db *sqlx.DB, txGetter TxGetter) *MatchRepository {
	return &MatchRepository{db: db, txGetter: txGetter}
}

// ExistsBetween reports whether a match exists between the two users in either direction.
func (r *MatchRepository) ExistsBetween(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM matches
			WHERE (sender_id = $1 AND receiver_id = $2)
			   OR (sender_id = $2 AND receiver_id = $1)
		)
	`
	args := []any{userA, userB}

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, args...)

	logQuery(query, args, exists, err)

	return exists, err
}

// Save inserts a match unless the pair already has one.
// Reports whether a row was created and fills created_at if so.
func (r *MatchRepository) Save(ctx context.Context, match *models.MatchDB) (bool, error) {
	const query = `
		INSERT INTO matches (match_id, sender_id, receiver_id, score, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT DO NOTHING
		RETURNING created_at
	`
	args := []any{match.MatchID, match.SenderID, match.ReceiverID, match.Score, match.Status}

	rows, err := executor(ctx, r.db, r.txGetter).QueryxContext(ctx, query, args...)
	if err != nil {
		logQuery(query, args, false, err)
		return false, err
	}
	defer rows.Close()

	created := rows.Next()
	if created {
		err = rows.Scan(&match.CreatedAt)
	}
	if err == nil {
		err = rows.Err()
	}

	logQuery(query, args, created, err)

	return created && err == nil, err
}

// ListForUser returns matches where the user is sender or receiver, newest
// first, each joined with the other participant's profile.
func (r *MatchRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Match, error) {
	const query = `
		SELECT m.match_id, m.sender_id, m.receiver_id, m.score, m.status, m.created_at,
		       u.user_id AS "user.user_id", u.username AS "user.username", u.full_name AS "user.full_name",
		       u.avatar_url AS "user.avatar_url", u.streak_count AS "user.streak_count"
		FROM matches m
		JOIN users u ON u.user_id = CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END
		WHERE m.sender_id = $1 OR m.receiver_id = $1
		ORDER BY m.created_at DESC, m.match_id DESC
	`

	matches := []models.Match{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &matches, query, userID)

	logQuery(query, []any{userID}, len(matches), err)

	return matches, err
}
