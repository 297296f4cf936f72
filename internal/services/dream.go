package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/sbilibin2017/dream-social/internal/pagination"
)

//go:generate mockgen -source=dream.go -destination=dream_mock.go -package=services

// Match search parameters
const (
	matchCandidateLimit = 10
	matchScore          = 0.95
)

// Feed page sizes
const (
	DefaultFeedLimit = 50
	MaxFeedLimit     = 100
)

// DreamReader defines read operations for dreams.
type DreamReader interface {
	GetByID(ctx context.Context, dreamID uuid.UUID) (*models.DreamDB, error)                                                      // Returns nil if the dream does not exist
	Feed(ctx context.Context, viewerID uuid.UUID, beforeAt *time.Time, beforeID *uuid.UUID, limit int) ([]models.FeedItem, error) // Returns a feed page newest first
	FindByKeywords(ctx context.Context, excludeUserID uuid.UUID, keywords []string, limit int) ([]models.DreamDB, error)          // Finds other users' dreams containing any keyword
}

// DreamWriter defines write operations for dreams.
type DreamWriter interface {
	Save(ctx context.Context, dream *models.DreamDB) error              // Inserts a dream, falling back to no video
	IncrementViews(ctx context.Context, dreamID uuid.UUID) (int, error) // Adds one view, sql.ErrNoRows if missing
}

// StreakIncrementer bumps a user's posting streak.
type StreakIncrementer interface {
	IncrementStreak(ctx context.Context, userID uuid.UUID, postedAt time.Time) (int, error) // Returns the new streak
}

// LikeStore defines like operations.
type LikeStore interface {
	Save(ctx context.Context, userID, dreamID uuid.UUID) (bool, error)   // Reports whether a like was created
	Delete(ctx context.Context, userID, dreamID uuid.UUID) (bool, error) // Reports whether a like was removed
	CountByDream(ctx context.Context, dreamID uuid.UUID) (int, error)    // Returns the like count
}

// CommentStore defines comment operations.
type CommentStore interface {
	Save(ctx context.Context, comment *models.CommentDB) error                    // Inserts a comment
	ListByDream(ctx context.Context, dreamID uuid.UUID) ([]models.Comment, error) // Returns comments oldest first
}

// MatchStore defines match operations.
type MatchStore interface {
	ExistsBetween(ctx context.Context, userA, userB uuid.UUID) (bool, error)   // Checks both directions
	Save(ctx context.Context, match *models.MatchDB) (bool, error)             // Reports whether a row was created
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Match, error) // Returns matches in both directions
}

// DreamNotifier creates notifications for dream activity.
type DreamNotifier interface {
	Notify(ctx context.Context, notificationType string, senderID, receiverID uuid.UUID, dreamID *uuid.UUID, message string) error
}

// EventSink receives domain events.
type EventSink interface {
	Publish(ctx context.Context, evts ...models.Event)
}

// CreateDreamInput holds the fields of a new dream.
type CreateDreamInput struct {
	Description string
	ImageURL    string
	VideoURL    *string
}

// DreamService handles dream posting and engagement.
type DreamService struct {
	reader   DreamReader
	writer   DreamWriter
	users    UserGetter
	streaks  StreakIncrementer
	likes    LikeStore
	comments CommentStore
	matches  MatchStore
	notifier DreamNotifier
	events   EventSink
}

// NewDreamService creates a new DreamService instance.
func NewDreamService(
	reader DreamReader,
	writer DreamWriter,
	users UserGetter,
	streaks StreakIncrementer,
	likes LikeStore,
	comments CommentStore,
	matches MatchStore,
	notifier DreamNotifier,
	events EventSink,
) *DreamService {
	return &DreamService{
		reader:   reader,
		writer:   writer,
		users:    users,
		streaks:  streaks,
		likes:    likes,
		comments: comments,
		matches:  matches,
		notifier: notifier,
		events:   events,
	}
}

// Create posts a dream, bumps the author's streak and links the author with
// users who dreamed about the same things. Returns the dream and the new streak.
func (svc *DreamService) Create(ctx context.Context, userID uuid.UUID, in CreateDreamInput) (*models.DreamDB, int, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.Description == "" || in.ImageURL == "" {
		return nil, 0, ErrInvalidInput
	}

	dream := &models.DreamDB{
		DreamID:     uuid.New(),
		UserID:      userID,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		VideoURL:    in.VideoURL,
	}

	if err := svc.writer.Save(ctx, dream); err != nil {
		logger.Log.Errorw("failed to save dream", "userID", userID, "error", err)
		return nil, 0, err
	}

	streak, err := svc.streaks.IncrementStreak(ctx, userID, time.Now())
	if err != nil {
		logger.Log.Errorw("failed to increment streak", "userID", userID, "error", err)
		return nil, 0, err
	}

	newMatches, err := svc.matchDream(ctx, dream)
	if err != nil {
		return nil, 0, err
	}

	events := make([]models.Event, 0, len(newMatches)+1)
	events = append(events, newEvent(models.EventDreamCreated, userID, dream.DreamID))
	for _, m := range newMatches {
		evt := newEvent(models.EventMatchCreated, m.SenderID, m.MatchID)
		evt.TargetID = m.ReceiverID.String()
		events = append(events, evt)
	}
	svc.events.Publish(ctx, events...)

	return dream, streak, nil
}

// matchDream creates a match with every other author whose dreams share a
// keyword with the new dream, unless the pair is already matched.
func (svc *DreamService) matchDream(ctx context.Context, dream *models.DreamDB) ([]models.MatchDB, error) {
	keywords := ExtractKeywords(dream.Description)
	if len(keywords) == 0 {
		return nil, nil
	}

	candidates, err := svc.reader.FindByKeywords(ctx, dream.UserID, keywords, matchCandidateLimit)
	if err != nil {
		logger.Log.Errorw("failed to find match candidates", "dreamID", dream.DreamID, "error", err)
		return nil, err
	}

	created := []models.MatchDB{}
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	for _, candidate := range candidates {
		if candidate.UserID == dream.UserID {
			continue
		}
		if _, ok := seen[candidate.UserID]; ok {
			continue
		}
		seen[candidate.UserID] = struct{}{}

		exists, err := svc.matches.ExistsBetween(ctx, dream.UserID, candidate.UserID)
		if err != nil {
			logger.Log.Errorw("failed to check match", "userID", dream.UserID, "candidateID", candidate.UserID, "error", err)
			return nil, err
		}
		if exists {
			continue
		}

		match := models.MatchDB{
			MatchID:    uuid.New(),
			SenderID:   dream.UserID,
			ReceiverID: candidate.UserID,
			Score:      matchScore,
			Status:     models.MatchStatusPending,
		}
		inserted, err := svc.matches.Save(ctx, &match)
		if err != nil {
			logger.Log.Errorw("failed to save match", "userID", dream.UserID, "candidateID", candidate.UserID, "error", err)
			return nil, err
		}
		if !inserted {
			continue
		}

		dreamID := dream.DreamID
		if err := svc.notifier.Notify(ctx, models.NotificationMatch, dream.UserID, candidate.UserID, &dreamID, messageMatched); err != nil {
			return nil, err
		}
		created = append(created, match)
	}

	return created, nil
}

// Feed returns a page of dreams for the viewer and the token of the next page,
// empty when there are no more dreams.
func (svc *DreamService) Feed(ctx context.Context, viewerID uuid.UUID, cursorToken string, limit int) ([]models.FeedItem, string, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	cursor, err := pagination.Decode(cursorToken)
	if err != nil {
		return nil, "", ErrInvalidInput
	}

	var beforeAt *time.Time
	var beforeID *uuid.UUID
	if !cursor.IsZero() {
		at, id := cursor.CreatedAt(), cursor.ID
		beforeAt, beforeID = &at, &id
	}

	items, err := svc.reader.Feed(ctx, viewerID, beforeAt, beforeID, limit+1)
	if err != nil {
		logger.Log.Errorw("failed to load feed", "viewerID", viewerID, "error", err)
		return nil, "", err
	}

	if len(items) <= limit {
		return items, "", nil
	}

	items = items[:limit]
	last := items[len(items)-1]
	next, err := pagination.Encode(pagination.After(last.CreatedAt, last.DreamID))
	if err != nil {
		return nil, "", err
	}
	return items, next, nil
}

// ToggleLike likes the dream, or removes the like if present.
// Returns the new state and like count.
func (svc *DreamService) ToggleLike(ctx context.Context, userID, dreamID uuid.UUID) (bool, int, error) {
	dream, err := svc.getDream(ctx, dreamID)
	if err != nil {
		return false, 0, err
	}

	removed, err := svc.likes.Delete(ctx, userID, dreamID)
	if err != nil {
		logger.Log.Errorw("failed to delete like", "userID", userID, "dreamID", dreamID, "error", err)
		return false, 0, err
	}

	liked := false
	if !removed {
		created, err := svc.likes.Save(ctx, userID, dreamID)
		if err != nil {
			logger.Log.Errorw("failed to save like", "userID", userID, "dreamID", dreamID, "error", err)
			return false, 0, err
		}
		liked = true

		if created && dream.UserID != userID {
			if err := svc.notifier.Notify(ctx, models.NotificationLike, userID, dream.UserID, &dreamID, messageLiked); err != nil {
				return false, 0, err
			}
		}
	}

	count, err := svc.likes.CountByDream(ctx, dreamID)
	if err != nil {
		logger.Log.Errorw("failed to count likes", "dreamID", dreamID, "error", err)
		return false, 0, err
	}

	return liked, count, nil
}

// AddComment comments on a dream and notifies its owner.
func (svc *DreamService) AddComment(ctx context.Context, userID, dreamID uuid.UUID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyContent
	}

	dream, err := svc.getDream(ctx, dreamID)
	if err != nil {
		return nil, err
	}

	author, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get comment author", "userID", userID, "error", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	comment := models.CommentDB{
		CommentID: uuid.New(),
		DreamID:   dreamID,
		UserID:    userID,
		Text:      text,
	}
	if err := svc.comments.Save(ctx, &comment); err != nil {
		logger.Log.Errorw("failed to save comment", "userID", userID, "dreamID", dreamID, "error", err)
		return nil, err
	}

	if dream.UserID != userID {
		if err := svc.notifier.Notify(ctx, models.NotificationComment, userID, dream.UserID, &dreamID, messageCommented); err != nil {
			return nil, err
		}
	}

	return &models.Comment{CommentDB: comment, User: summaryOf(author)}, nil
}

// Comments returns the comments of a dream oldest first.
func (svc *DreamService) Comments(ctx context.Context, dreamID uuid.UUID) ([]models.Comment, error) {
	if _, err := svc.getDream(ctx, dreamID); err != nil {
		return nil, err
	}

	comments, err := svc.comments.ListByDream(ctx, dreamID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "dreamID", dreamID, "error", err)
		return nil, err
	}
	return comments, nil
}

// RecordView increments the dream's view counter and returns it.
func (svc *DreamService) RecordView(ctx context.Context, dreamID uuid.UUID) (int, error) {
	views, err := svc.writer.IncrementViews(ctx, dreamID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrDreamNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to record view", "dreamID", dreamID, "error", err)
		return 0, err
	}
	return views, nil
}

// Matches returns the user's matches in both directions.
func (svc *DreamService) Matches(ctx context.Context, userID uuid.UUID) ([]models.Match, error) {
	matches, err := svc.matches.ListForUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list matches", "userID", userID, "error", err)
		return nil, err
	}
	return matches, nil
}

func (svc *DreamService) getDream(ctx context.Context, dreamID uuid.UUID) (*models.DreamDB, error) {
	dream, err := svc.reader.GetByID(ctx, dreamID)
	if err != nil {
		logger.Log.Errorw("failed to get dream", "dreamID", dreamID, "error", err)
		return nil, err
	}
	if dream == nil {
		return nil, ErrDreamNotFound
	}
	return dream, nil
}
