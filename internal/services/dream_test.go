package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/sbilibin2017/dream-social/internal/pagination"
	"github.com/sbilibin2017/dream-social/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dreamMocks struct {
	reader   *services.MockDreamReader
	writer   *services.MockDreamWriter
	users    *services.MockUserGetter
	streaks  *services.MockStreakIncrementer
	likes    *services.MockLikeStore
	comments *services.MockCommentStore
	matches  *services.MockMatchStore
	notifier *services.MockDreamNotifier
	events   *services.MockEventSink
}

func newDreamService(t *testing.T) (*services.DreamService, dreamMocks) {
	ctrl := gomock.NewController(t)
	m := dreamMocks{
		reader:   services.NewMockDreamReader(ctrl),
		writer:   services.NewMockDreamWriter(ctrl),
		users:    services.NewMockUserGetter(ctrl),
		streaks:  services.NewMockStreakIncrementer(ctrl),
		likes:    services.NewMockLikeStore(ctrl),
		comments: services.NewMockCommentStore(ctrl),
		matches:  services.NewMockMatchStore(ctrl),
		notifier: services.NewMockDreamNotifier(ctrl),
		events:   services.NewMockEventSink(ctrl),
	}
	svc := services.NewDreamService(m.reader, m.writer, m.users, m.streaks, m.likes, m.comments, m.matches, m.notifier, m.events)
	return svc, m
}

func TestDreamService_Create_Validation(t *testing.T) {
	svc, _ := newDreamService(t)
	userID := uuid.New()

	_, _, err := svc.Create(context.Background(), userID, services.CreateDreamInput{Description: "  ", ImageURL: "img"})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, _, err = svc.Create(context.Background(), userID, services.CreateDreamInput{Description: "castle", ImageURL: ""})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestDreamService_Create_CrystalCastleMatch(t *testing.T) {
	svc, m := newDreamService(t)
	alice, bob := uuid.New(), uuid.New()
	video := "https://video.example/v"

	bobDreams := []models.DreamDB{
		{DreamID: uuid.New(), UserID: bob, Description: "a castle made of crystal in the sky"},
		{DreamID: uuid.New(), UserID: bob, Description: "crystal rain"},
	}

	var savedDream *models.DreamDB
	var savedMatch *models.MatchDB

	gomock.InOrder(
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *models.DreamDB) error {
			assert.Equal(t, alice, d.UserID)
			assert.Equal(t, "I saw a crystal castle floating above clouds", d.Description)
			assert.Equal(t, &video, d.VideoURL)
			savedDream = d
			return nil
		}),
		m.streaks.EXPECT().IncrementStreak(gomock.Any(), alice, gomock.Any()).Return(4, nil),
		m.reader.EXPECT().
			FindByKeywords(gomock.Any(), alice, []string{"crystal", "castle", "floating", "above", "clouds"}, 10).
			Return(bobDreams, nil),
		m.matches.EXPECT().ExistsBetween(gomock.Any(), alice, bob).Return(false, nil),
		m.matches.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, match *models.MatchDB) (bool, error) {
			assert.Equal(t, alice, match.SenderID)
			assert.Equal(t, bob, match.ReceiverID)
			assert.Equal(t, 0.95, match.Score)
			assert.Equal(t, models.MatchStatusPending, match.Status)
			savedMatch = match
			return true, nil
		}),
		m.notifier.EXPECT().
			Notify(gomock.Any(), models.NotificationMatch, alice, bob, gomock.Any(), gomock.Any()).
			Return(nil),
	)

	m.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(_ context.Context, evts ...models.Event) {
		require.Len(t, evts, 2)
		assert.Equal(t, models.EventDreamCreated, evts[0].Type)
		assert.Equal(t, savedDream.DreamID.String(), evts[0].SubjectID)
		assert.Equal(t, models.EventMatchCreated, evts[1].Type)
		assert.Equal(t, savedMatch.MatchID.String(), evts[1].SubjectID)
		assert.Equal(t, bob.String(), evts[1].TargetID)
	}).Times(1)

	dream, streak, err := svc.Create(context.Background(), alice, services.CreateDreamInput{
		Description: "I saw a crystal castle floating above clouds",
		ImageURL:    "https://img.example/1",
		VideoURL:    &video,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, streak)
	assert.Same(t, savedDream, dream)
}

func TestDreamService_Create_ExistingMatchIsNotDuplicated(t *testing.T) {
	svc, m := newDreamService(t)
	alice, bob := uuid.New(), uuid.New()

	m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.streaks.EXPECT().IncrementStreak(gomock.Any(), alice, gomock.Any()).Return(5, nil)
	m.reader.EXPECT().FindByKeywords(gomock.Any(), alice, gomock.Any(), 10).
		Return([]models.DreamDB{{UserID: bob}}, nil)
	m.matches.EXPECT().ExistsBetween(gomock.Any(), alice, bob).Return(true, nil)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)

	_, streak, err := svc.Create(context.Background(), alice, services.CreateDreamInput{
		Description: "another crystal castle",
		ImageURL:    "img",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, streak)
}

func TestDreamService_Create_ConcurrentMatchInsertSkipsNotification(t *testing.T) {
	svc, m := newDreamService(t)
	alice, bob := uuid.New(), uuid.New()

	m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.streaks.EXPECT().IncrementStreak(gomock.Any(), alice, gomock.Any()).Return(1, nil)
	m.reader.EXPECT().FindByKeywords(gomock.Any(), alice, gomock.Any(), 10).
		Return([]models.DreamDB{{UserID: bob}}, nil)
	m.matches.EXPECT().ExistsBetween(gomock.Any(), alice, bob).Return(false, nil)
	m.matches.EXPECT().Save(gomock.Any(), gomock.Any()).Return(false, nil)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)

	_, _, err := svc.Create(context.Background(), alice, services.CreateDreamInput{Description: "crystal castle", ImageURL: "img"})
	require.NoError(t, err)
}

func TestDreamService_Create_ShortWordsNeverMatch(t *testing.T) {
	svc, m := newDreamService(t)
	alice := uuid.New()

	m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.streaks.EXPECT().IncrementStreak(gomock.Any(), alice, gomock.Any()).Return(2, nil)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)

	_, streak, err := svc.Create(context.Background(), alice, services.CreateDreamInput{Description: "a cat in the sea", ImageURL: "img"})
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestDreamService_Create_Failures(t *testing.T) {
	alice := uuid.New()
	in := services.CreateDreamInput{Description: "crystal castle", ImageURL: "img"}

	t.Run("insert fails", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, _, err := svc.Create(context.Background(), alice, in)
		assert.EqualError(t, err, "insert failed")
	})

	t.Run("streak fails", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.streaks.EXPECT().IncrementStreak(gomock.Any(), alice, gomock.Any()).Return(0, errors.New("update failed"))

		_, _, err := svc.Create(context.Background(), alice, in)
		assert.EqualError(t, err, "update failed")
	})

	t.Run("candidate search fails", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.streaks.EXPECT().IncrementStreak(gomock.Any(), alice, gomock.Any()).Return(1, nil)
		m.reader.EXPECT().FindByKeywords(gomock.Any(), alice, gomock.Any(), 10).Return(nil, errors.New("query failed"))

		_, _, err := svc.Create(context.Background(), alice, in)
		assert.EqualError(t, err, "query failed")
	})
}

func TestDreamService_Feed(t *testing.T) {
	viewer := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	items := func(n int) []models.FeedItem {
		out := make([]models.FeedItem, n)
		for i := range out {
			out[i].DreamID = uuid.New()
			out[i].CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		}
		return out
	}

	t.Run("first page with more rows", func(t *testing.T) {
		svc, m := newDreamService(t)
		rows := items(3)
		m.reader.EXPECT().Feed(gomock.Any(), viewer, nil, nil, 3).Return(rows, nil)

		page, next, err := svc.Feed(context.Background(), viewer, "", 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)
		require.NotEmpty(t, next)

		cursor, err := pagination.Decode(next)
		require.NoError(t, err)
		assert.Equal(t, rows[1].DreamID, cursor.ID)
		assert.True(t, rows[1].CreatedAt.Equal(cursor.CreatedAt()))
	})

	t.Run("next page uses the cursor", func(t *testing.T) {
		svc, m := newDreamService(t)
		id := uuid.New()
		token, err := pagination.Encode(pagination.After(now, id))
		require.NoError(t, err)

		m.reader.EXPECT().Feed(gomock.Any(), viewer, gomock.Any(), gomock.Any(), services.DefaultFeedLimit+1).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, at *time.Time, before *uuid.UUID, _ int) ([]models.FeedItem, error) {
				require.NotNil(t, at)
				require.NotNil(t, before)
				assert.True(t, now.Equal(*at))
				assert.Equal(t, id, *before)
				return items(1), nil
			})

		page, next, err := svc.Feed(context.Background(), viewer, token, 0)
		require.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Empty(t, next)
	})

	t.Run("limit is capped", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.reader.EXPECT().Feed(gomock.Any(), viewer, nil, nil, services.MaxFeedLimit+1).Return([]models.FeedItem{}, nil)

		_, _, err := svc.Feed(context.Background(), viewer, "", 1000)
		require.NoError(t, err)
	})

	t.Run("bad cursor", func(t *testing.T) {
		svc, _ := newDreamService(t)

		_, _, err := svc.Feed(context.Background(), viewer, "!!!", 10)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}

func TestDreamService_ToggleLike(t *testing.T) {
	owner, liker := uuid.New(), uuid.New()
	dreamID := uuid.New()
	dream := &models.DreamDB{DreamID: dreamID, UserID: owner}

	t.Run("like another user's dream notifies once", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), dreamID).Return(dream, nil)
		m.likes.EXPECT().Delete(gomock.Any(), liker, dreamID).Return(false, nil)
		m.likes.EXPECT().Save(gomock.Any(), liker, dreamID).Return(true, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), models.NotificationLike, liker, owner, gomock.Any(), "liked your dream").Return(nil)
		m.likes.EXPECT().CountByDream(gomock.Any(), dreamID).Return(1, nil)

		liked, count, err := svc.ToggleLike(context.Background(), liker, dreamID)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, 1, count)
	})

	t.Run("liking own dream does not notify", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), dreamID).Return(dream, nil)
		m.likes.EXPECT().Delete(gomock.Any(), owner, dreamID).Return(false, nil)
		m.likes.EXPECT().Save(gomock.Any(), owner, dreamID).Return(true, nil)
		m.likes.EXPECT().CountByDream(gomock.Any(), dreamID).Return(1, nil)

		liked, _, err := svc.ToggleLike(context.Background(), owner, dreamID)
		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("unlike does not notify", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), dreamID).Return(dream, nil)
		m.likes.EXPECT().Delete(gomock.Any(), liker, dreamID).Return(true, nil)
		m.likes.EXPECT().CountByDream(gomock.Any(), dreamID).Return(0, nil)

		liked, count, err := svc.ToggleLike(context.Background(), liker, dreamID)
		require.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, 0, count)
	})

	t.Run("missing dream", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), dreamID).Return(nil, nil)

		_, _, err := svc.ToggleLike(context.Background(), liker, dreamID)
		assert.ErrorIs(t, err, services.ErrDreamNotFound)
	})
}

func TestDreamService_AddComment(t *testing.T) {
	owner, author := uuid.New(), uuid.New()
	dreamID := uuid.New()
	dream := &models.DreamDB{DreamID: dreamID, UserID: owner}

	t.Run("comment notifies owner", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), dreamID).Return(dream, nil)
		m.users.EXPECT().GetByID(gomock.Any(), author).Return(&models.UserDB{UserID: author, Username: "bob"}, nil)
		m.comments.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *models.CommentDB) error {
			assert.Equal(t, "lovely", c.Text)
			return nil
		})
		m.notifier.EXPECT().Notify(gomock.Any(), models.NotificationComment, author, owner, gomock.Any(), gomock.Any()).Return(nil)

		comment, err := svc.AddComment(context.Background(), author, dreamID, "  lovely ")
		require.NoError(t, err)
		assert.Equal(t, "bob", comment.User.Username)
		assert.Equal(t, dreamID, comment.DreamID)
	})

	t.Run("own dream", func(t *testing.T) {
		svc, m := newDreamService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), dreamID).Return(dream, nil)
		m.users.EXPECT().GetByID(gomock.Any(), owner).Return(&models.UserDB{UserID: owner}, nil)
		m.comments.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.AddComment(context.Background(), owner, dreamID, "mine")
		require.NoError(t, err)
	})

	t.Run("empty text", func(t *testing.T) {
		svc, _ := newDreamService(t)

		_, err := svc.AddComment(context.Background(), author, dreamID, " ")
		assert.ErrorIs(t, err, services.ErrEmptyContent)
	})
}

func TestDreamService_RecordView(t *testing.T) {
	dreamID := uuid.New()

	svc, m := newDreamService(t)
	m.writer.EXPECT().IncrementViews(gomock.Any(), dreamID).Return(8, nil)

	views, err := svc.RecordView(context.Background(), dreamID)
	require.NoError(t, err)
	assert.Equal(t, 8, views)

	m.writer.EXPECT().IncrementViews(gomock.Any(), dreamID).Return(0, sql.ErrNoRows)

	_, err = svc.RecordView(context.Background(), dreamID)
	assert.ErrorIs(t, err, services.ErrDreamNotFound)
}

func TestDreamService_Comments(t *testing.T) {
	dreamID := uuid.New()

	svc, m := newDreamService(t)
	m.reader.EXPECT().GetByID(gomock.Any(), dreamID).Return(&models.DreamDB{DreamID: dreamID}, nil)
	m.comments.EXPECT().ListByDream(gomock.Any(), dreamID).Return([]models.Comment{{}}, nil)

	comments, err := svc.Comments(context.Background(), dreamID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
