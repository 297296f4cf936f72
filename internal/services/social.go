package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/models"
)

//go:generate mockgen -source=social.go -destination=social_mock.go -package=services

// searchLimit caps user search results.
const searchLimit = 10

// FollowStore defines follow operations.
type FollowStore interface {
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) // Reports whether the edge exists
	Save(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)   // Reports whether the edge was created
	Delete(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) // Reports whether the edge was removed
}

// FollowNotifier creates follow notifications.
type FollowNotifier interface {
	Notify(ctx context.Context, notificationType string, senderID, receiverID uuid.UUID, dreamID *uuid.UUID, message string) error
}

// SocialService handles user search, profiles and follows.
type SocialService struct {
	users    UserReader
	dreams   UserDreamLister
	follows  FollowStore
	notifier FollowNotifier
}

// NewSocialService creates a new SocialService instance.
func NewSocialService(users UserReader, dreams UserDreamLister, follows FollowStore, notifier FollowNotifier) *SocialService {
	return &SocialService{users: users, dreams: dreams, follows: follows, notifier: notifier}
}

// Search finds up to ten other users by username or full name.
// An empty query returns no users.
func (svc *SocialService) Search(ctx context.Context, viewerID uuid.UUID, query string) ([]models.UserSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.UserSearchResult{}, nil
	}

	users, err := svc.users.Search(ctx, viewerID, query, searchLimit)
	if err != nil {
		logger.Log.Errorw("failed to search users", "query", query, "error", err)
		return nil, err
	}
	return users, nil
}

// Profile returns a user's public profile as seen by the viewer.
func (svc *SocialService) Profile(ctx context.Context, viewerID uuid.UUID, username string) (*Profile, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	dreams, err := svc.dreams.ListByUser(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list dreams", "userID", user.UserID, "error", err)
		return nil, err
	}

	counts, err := svc.users.GetCounts(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get counts", "userID", user.UserID, "error", err)
		return nil, err
	}

	following, err := svc.follows.Exists(ctx, viewerID, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to check follow", "followerID", viewerID, "followingID", user.UserID, "error", err)
		return nil, err
	}

	return &Profile{UserDB: user, Dreams: dreams, Counts: *counts, IsFollowing: &following}, nil
}

// ToggleFollow follows the user, or unfollows if already following.
// Returns the new state.
func (svc *SocialService) ToggleFollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	if followerID == followingID {
		return false, ErrSelfFollow
	}

	if err := svc.ensureUser(ctx, followingID); err != nil {
		return false, err
	}

	removed, err := svc.follows.Delete(ctx, followerID, followingID)
	if err != nil {
		logger.Log.Errorw("failed to delete follow", "followerID", followerID, "followingID", followingID, "error", err)
		return false, err
	}
	if removed {
		return false, nil
	}

	created, err := svc.follows.Save(ctx, followerID, followingID)
	if err != nil {
		logger.Log.Errorw("failed to save follow", "followerID", followerID, "followingID", followingID, "error", err)
		return false, err
	}

	if created {
		if err := svc.notifier.Notify(ctx, models.NotificationFollow, followerID, followingID, nil, messageFollowed); err != nil {
			return false, err
		}
	}

	return true, nil
}

// Unfollow removes the follow edge if present.
func (svc *SocialService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if _, err := svc.follows.Delete(ctx, followerID, followingID); err != nil {
		logger.Log.Errorw("failed to delete follow", "followerID", followerID, "followingID", followingID, "error", err)
		return err
	}
	return nil
}

func (svc *SocialService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
