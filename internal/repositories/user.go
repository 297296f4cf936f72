package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dream-social/internal/models"
)

const userColumns = `user_id, username, password_hash, full_name, bio, avatar_url, age, gender,
	streak_count, last_posted_at, created_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns nil when the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByUsername returns nil when the user does not exist.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Search finds users whose username or full name contains the query as a
// literal substring, case-insensitively, excluding the viewer.
func (r *UserReadRepository) Search(ctx context.Context, viewerID uuid.UUID, q string, limit int) ([]models.UserSearchResult, error) {
	const query = `
		SELECT u.user_id, u.username, u.full_name, u.avatar_url, u.bio,
		       (SELECT COUNT(*) FROM follows f WHERE f.following_id = u.user_id) AS followers,
		       (SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.user_id) AS following,
		       EXISTS (
		           SELECT 1 FROM follows f WHERE f.follower_id = $1 AND f.following_id = u.user_id
		       ) AS is_following
		FROM users u
		WHERE u.user_id <> $1
		  AND (strpos(lower(u.username), lower($2)) > 0 OR strpos(lower(u.full_name), lower($2)) > 0)
		ORDER BY u.username
		LIMIT $3
	`
	args := []any{viewerID, q, limit}

	users := []models.UserSearchResult{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)

	logQuery(query, args, len(users), err)

	return users, err
}

// GetCounts returns follower, following and dream counters of a user.
func (r *UserReadRepository) GetCounts(ctx context.Context, userID uuid.UUID) (*models.UserCounts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM follows WHERE following_id = $1) AS followers,
			(SELECT COUNT(*) FROM follows WHERE follower_id = $1) AS following,
			(SELECT COUNT(*) FROM dreams WHERE user_id = $1) AS dreams
	`

	var counts models.UserCounts
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &counts, query, userID)

	logQuery(query, []any{userID}, counts, err)

	if err != nil {
		return nil, err
	}
	return &counts, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A taken username yields ErrAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, username, password_hash, full_name, bio, avatar_url, age, gender,
		                   streak_count, last_posted_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING created_at
	`
	args := []any{
		user.UserID, user.Username, user.PasswordHash, user.FullName, user.Bio, user.AvatarURL,
		user.Age, user.Gender, user.StreakCount, user.LastPostedAt,
	}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user.CreatedAt, query, args...)

	// password hash stays out of the log
	logQuery(query, []any{user.UserID, user.Username}, user.CreatedAt, err)

	if isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return err
}

// UpdateProfile sets the given bio and avatar, leaving nil fields unchanged.
// Returns the updated row, or nil if the user is gone.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, bio, avatarURL *string) (*models.UserDB, error) {
	query := `
		UPDATE users SET bio = COALESCE($2, bio), avatar_url = COALESCE($3, avatar_url)
		WHERE user_id = $1
		RETURNING ` + userColumns
	args := []any{userID, bio, avatarURL}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	logQuery(query, args, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetStreak sets the streak counter to zero.
func (r *UserWriteRepository) ResetStreak(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET streak_count = 0 WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)

	logQuery(query, []any{userID}, rowsAffected(res), err)

	return err
}

// IncrementStreak adds one to the streak, stamps the posting time and returns the new value.
func (r *UserWriteRepository) IncrementStreak(ctx context.Context, userID uuid.UUID, postedAt time.Time) (int, error) {
	const query = `
		UPDATE users SET streak_count = streak_count + 1, last_posted_at = $2
		WHERE user_id = $1
		RETURNING streak_count
	`
	args := []any{userID, postedAt}

	var streak int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &streak, query, args...)

	logQuery(query, args, streak, err)

	return streak, err
}
