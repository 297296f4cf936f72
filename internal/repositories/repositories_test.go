package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func txGetterFor(tx *sqlx.Tx) TxGetter {
	return func(ctx context.Context) *sqlx.Tx { return tx }
}

func TestExecutor_PrefersTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	assert.Same(t, db, executor(ctx, db, nil))
	assert.Same(t, db, executor(ctx, db, txGetterFor(nil)))

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	assert.Same(t, tx, executor(ctx, db, txGetterFor(tx)))
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"user_id", "username", "password_hash", "full_name", "bio", "avatar_url", "age", "gender",
			"streak_count", "last_posted_at", "created_at",
		}).AddRow(userID.String(), "demo", "hash", "Demo User", "", "", nil, "", 5, nil, time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
			WithArgs(userID).
			WillReturnRows(rows)

		user, err := repo.GetByID(context.Background(), userID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "demo", user.Username)
		assert.Equal(t, 5, user.StreakCount)
		assert.Nil(t, user.LastPostedAt)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(context.Background(), userID)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
			WithArgs(userID).
			WillReturnError(errors.New("connection reset"))

		user, err := repo.GetByID(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Save(context.Background(), &models.UserDB{UserID: uuid.New(), Username: "demo"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_IncrementStreak(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SET streak_count = streak_count + 1")).
		WithArgs(userID, now).
		WillReturnRows(sqlmock.NewRows([]string{"streak_count"}).AddRow(6))

	streak, err := repo.IncrementStreak(context.Background(), userID, now)
	require.NoError(t, err)
	assert.Equal(t, 6, streak)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDreamWriteRepository_Save_RetriesWithoutVideoInsideTx(t *testing.T) {
	db, mock := newMockDB(t)
	video := "https://video.example/prompt/castle"
	dream := &models.DreamDB{
		DreamID:     uuid.New(),
		UserID:      uuid.New(),
		Description: "castle",
		ImageURL:    "https://image.example/prompt/castle",
		VideoURL:    &video,
	}
	createdAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("SAVEPOINT dream_insert").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO dreams")).
		WithArgs(dream.DreamID, dream.UserID, dream.Description, dream.ImageURL, video).
		WillReturnError(errors.New("value too long"))
	mock.ExpectExec("ROLLBACK TO SAVEPOINT dream_insert").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO dreams")).
		WithArgs(dream.DreamID, dream.UserID, dream.Description, dream.ImageURL, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewDreamWriteRepository(db, txGetterFor(tx))
	err = repo.Save(context.Background(), dream)

	require.NoError(t, err)
	assert.Nil(t, dream.VideoURL)
	assert.Equal(t, createdAt, dream.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDreamWriteRepository_Save_RetryFailsTwice(t *testing.T) {
	db, mock := newMockDB(t)
	video := "https://video.example/prompt/castle"
	dream := &models.DreamDB{DreamID: uuid.New(), UserID: uuid.New(), Description: "d", ImageURL: "i", VideoURL: &video}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO dreams")).WillReturnError(errors.New("boom"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO dreams")).WillReturnError(errors.New("still boom"))

	repo := NewDreamWriteRepository(db, nil)
	err := repo.Save(context.Background(), dream)

	assert.EqualError(t, err, "still boom")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDreamWriteRepository_Save_NoVideoSingleAttempt(t *testing.T) {
	db, mock := newMockDB(t)
	empty := ""
	dream := &models.DreamDB{DreamID: uuid.New(), UserID: uuid.New(), Description: "d", ImageURL: "i", VideoURL: &empty}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO dreams")).WillReturnError(errors.New("boom"))

	repo := NewDreamWriteRepository(db, nil)
	err := repo.Save(context.Background(), dream)

	assert.EqualError(t, err, "boom")
	assert.Nil(t, dream.VideoURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDreamWriteRepository_IncrementViews_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	dreamID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE dreams SET views = views + 1")).
		WithArgs(dreamID).
		WillReturnError(sql.ErrNoRows)

	_, err := NewDreamWriteRepository(db, nil).IncrementViews(context.Background(), dreamID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDreamReadRepository_FindByKeywords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDreamReadRepository(db, nil)
	owner := uuid.New()
	other := uuid.New()

	t.Run("no keywords skips the query", func(t *testing.T) {
		dreams, err := repo.FindByKeywords(context.Background(), owner, nil, 10)
		require.NoError(t, err)
		assert.Empty(t, dreams)
	})

	t.Run("ORs every keyword", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"dream_id", "user_id", "description", "image_url", "video_url", "views", "created_at",
		}).AddRow(uuid.New().String(), other.String(), "A crystal castle", "img", nil, 0, time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE d.user_id <> $1 AND (strpos(lower(d.description), $2) > 0 OR strpos(lower(d.description), $3) > 0)")).
			WithArgs(owner, "crystal", "night_sky", 10).
			WillReturnRows(rows)

		dreams, err := repo.FindByKeywords(context.Background(), owner, []string{"crystal", "night_sky"}, 10)
		require.NoError(t, err)
		require.Len(t, dreams, 1)
		assert.Equal(t, other, dreams[0].UserID)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_SaveDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepository(db, nil)
	userID, dreamID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO likes")).
		WithArgs(userID, dreamID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO likes")).
		WithArgs(userID, dreamID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM likes")).
		WithArgs(userID, dreamID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM likes")).
		WithArgs(userID, dreamID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()

	created, err := repo.Save(ctx, userID, dreamID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Save(ctx, userID, dreamID)
	require.NoError(t, err)
	assert.False(t, created)

	deleted, err := repo.Delete(ctx, userID, dreamID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, userID, dreamID)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_Search_LiteralSubstring(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)
	viewer := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("strpos(lower(u.username), lower($2)) > 0")).
		WithArgs(viewer, "50%_off", 20).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username"}))

	users, err := repo.Search(context.Background(), viewer, "50%_off", 20)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchRepository(db, nil)
	createdAt := time.Now()

	match := &models.MatchDB{
		MatchID:    uuid.New(),
		SenderID:   uuid.New(),
		ReceiverID: uuid.New(),
		Score:      0.95,
		Status:     models.MatchStatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT DO NOTHING")).
		WithArgs(match.MatchID, match.SenderID, match.ReceiverID, 0.95, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT DO NOTHING")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

	created, err := repo.Save(context.Background(), match)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, createdAt, match.CreatedAt)

	created, err = repo.Save(context.Background(), match)
	require.NoError(t, err)
	assert.False(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db, nil)
	id, receiver := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read = TRUE WHERE notification_id = $1 AND receiver_id = $2")).
		WithArgs(id, receiver).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkRead(context.Background(), id, receiver)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_UpdateLastMessage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConversationRepository(db, nil)
	id := uuid.New()
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE conversations")).
		WithArgs(id, "hi", at, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateLastMessage(context.Background(), id, "hi", at, true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_MarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db, nil)
	sender, receiver := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE messages SET read = TRUE")).
		WithArgs(sender, receiver).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.MarkRead(context.Background(), sender, receiver)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
