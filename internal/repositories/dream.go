package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/models"
)

const dreamColumns = `d.dream_id, d.user_id, d.description, d.image_url, d.video_url, d.views, d.created_at`

type DreamReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDreamReadRepository(db *sqlx.DB, txGetter TxGetter) *DreamReadRepository {
	return &DreamReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns nil when the dream does not exist.
func (r *DreamReadRepository) GetByID(ctx context.Context, dreamID uuid.UUID) (*models.DreamDB, error) {
	const query = `SELECT ` + dreamColumns + ` FROM dreams d WHERE d.dream_id = $1`

	var dream models.DreamDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &dream, query, dreamID)

	logQuery(query, []any{dreamID}, dream.DreamID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dream, nil
}

// Feed returns dreams newest first, strictly older than (beforeAt, beforeID)
// when beforeAt is set, enriched for the viewer.
func (r *DreamReadRepository) Feed(
	ctx context.Context,
	viewerID uuid.UUID,
	beforeAt *time.Time,
	beforeID *uuid.UUID,
	limit int,
) ([]models.FeedItem, error) {
	const query = `
		SELECT ` + dreamColumns + `,
		       u.user_id AS "user.user_id", u.username AS "user.username", u.full_name AS "user.full_name",
		       u.avatar_url AS "user.avatar_url", u.streak_count AS "user.streak_count",
		       (SELECT COUNT(*) FROM likes l WHERE l.dream_id = d.dream_id) AS likes_count,
		       (SELECT COUNT(*) FROM comments c WHERE c.dream_id = d.dream_id) AS comments_count,
		       EXISTS (SELECT 1 FROM likes l WHERE l.dream_id = d.dream_id AND l.user_id = $1) AS is_liked
		FROM dreams d
		JOIN users u ON u.user_id = d.user_id
		WHERE $2::timestamptz IS NULL OR (d.created_at, d.dream_id) < ($2::timestamptz, $3::uuid)
		ORDER BY d.created_at DESC, d.dream_id DESC
		LIMIT $4
	`
	args := []any{viewerID, beforeAt, beforeID, limit}

	items := []models.FeedItem{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &items, query, args...)

	logQuery(query, args, len(items), err)

	return items, err
}

// ListByUser returns a user's dreams newest first.
func (r *DreamReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DreamDB, error) {
	const query = `
		SELECT ` + dreamColumns + `
		FROM dreams d
		WHERE d.user_id = $1
		ORDER BY d.created_at DESC, d.dream_id DESC
	`

	dreams := []models.DreamDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &dreams, query, userID)

	logQuery(query, []any{userID}, len(dreams), err)

	return dreams, err
}

// FindByKeywords returns dreams of users other than excludeUserID whose
// lowercased description contains at least one of the keywords as a literal
// substring. Keywords are expected lowercased.
func (r *DreamReadRepository) FindByKeywords(
	ctx context.Context,
	excludeUserID uuid.UUID,
	keywords []string,
	limit int,
) ([]models.DreamDB, error) {
	if len(keywords) == 0 {
		return []models.DreamDB{}, nil
	}

	args := make([]any, 0, len(keywords)+2)
	args = append(args, excludeUserID)
	conds := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		args = append(args, kw)
		conds = append(conds, fmt.Sprintf("strpos(lower(d.description), $%d) > 0", len(args)))
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT %s
		FROM dreams d
		WHERE d.user_id <> $1 AND (%s)
		ORDER BY d.created_at DESC
		LIMIT $%d
	`, dreamColumns, strings.Join(conds, " OR "), len(args))

	dreams := []models.DreamDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &dreams, query, args...)

	logQuery(query, args, len(dreams), err)

	return dreams, err
}

type DreamWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDreamWriteRepository(db *sqlx.DB, txGetter TxGetter) *DreamWriteRepository {
	return &DreamWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a dream and fills its created_at. When the insert with a video
// fails it is retried once without the video and VideoURL is cleared.
// Inside a transaction the first attempt runs under a savepoint so that the
// retry is still possible.
func (r *DreamWriteRepository) Save(ctx context.Context, dream *models.DreamDB) error {
	if dream.VideoURL == nil || *dream.VideoURL == "" {
		dream.VideoURL = nil
		return r.insert(ctx, dream)
	}

	var tx *sqlx.Tx
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}

	if tx != nil {
		if _, err := tx.ExecContext(ctx, `SAVEPOINT dream_insert`); err != nil {
			return err
		}
	}

	err := r.insert(ctx, dream)
	if err == nil {
		if tx != nil {
			_, err = tx.ExecContext(ctx, `RELEASE SAVEPOINT dream_insert`)
		}
		return err
	}

	logger.Log.Warnw("dream insert with video failed, retrying without video",
		"dream_id", dream.DreamID, "error", err)

	if tx != nil {
		if _, rbErr := tx.ExecContext(ctx, `ROLLBACK TO SAVEPOINT dream_insert`); rbErr != nil {
			return rbErr
		}
	}

	dream.VideoURL = nil
	return r.insert(ctx, dream)
}

func (r *DreamWriteRepository) insert(ctx context.Context, dream *models.DreamDB) error {
	const query = `
		INSERT INTO dreams (dream_id, user_id, description, image_url, video_url, views, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, NOW())
		RETURNING created_at
	`
	args := []any{dream.DreamID, dream.UserID, dream.Description, dream.ImageURL, dream.VideoURL}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &dream.CreatedAt, query, args...)

	logQuery(query, args, dream.CreatedAt, err)

	return err
}

// IncrementViews adds one view and returns the new count.
// Returns sql.ErrNoRows when the dream does not exist.
func (r *DreamWriteRepository) IncrementViews(ctx context.Context, dreamID uuid.UUID) (int, error) {
	const query = `UPDATE dreams SET views = views + 1 WHERE dream_id = $1 RETURNING views`

	var views int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &views, query, dreamID)

	logQuery(query, []any{dreamID}, views, err)

	return views, err
}
