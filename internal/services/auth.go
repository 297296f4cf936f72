package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/sbilibin2017/dream-social/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// maxBioLen is the maximum bio length in characters.
const maxBioLen = 100

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)                                      // Returns nil if the user does not exist
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)                                 // Returns nil if the user does not exist
	Search(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]models.UserSearchResult, error) // Finds users by username or full name
	GetCounts(ctx context.Context, userID uuid.UUID) (*models.UserCounts, error)                                // Returns follower, following and dream counters
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error                                                 // Inserts a new user
	UpdateProfile(ctx context.Context, userID uuid.UUID, bio, avatarURL *string) (*models.UserDB, error) // Updates bio and avatar, nil keeps the value
	ResetStreak(ctx context.Context, userID uuid.UUID) error                                             // Sets the streak to zero
	IncrementStreak(ctx context.Context, userID uuid.UUID, postedAt time.Time) (int, error)              // Adds one to the streak
}

// UserDreamLister lists dreams of a user.
type UserDreamLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DreamDB, error) // Returns a user's dreams newest first
}

// UserMatchLister lists matches of a user.
type UserMatchLister interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Match, error) // Returns matches in both directions
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// RegisterInput holds the fields of a new account.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Gender   string
	Age      *int
}

// Profile is a user together with their dreams and counters.
type Profile struct {
	*models.UserDB
	Dreams      []models.DreamDB  `json:"dreams"`
	Matches     []models.Match    `json:"matches,omitempty"`
	Counts      models.UserCounts `json:"counts"`
	IsFollowing *bool             `json:"isFollowing,omitempty"`
}

// AuthService handles registration, login and the current user's account.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	dreams  UserDreamLister
	matches UserMatchLister
	jwt     JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	dreams UserDreamLister,
	matches UserMatchLister,
	jwt JWTGenerator,
) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		dreams:  dreams,
		matches: matches,
		jwt:     jwt,
	}
}

// Register registers a new user.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) error {
	in.Username = strings.TrimSpace(in.Username)
	in.FullName = strings.TrimSpace(in.FullName)
	if in.Username == "" || in.Password == "" {
		return ErrInvalidInput
	}
	if in.FullName == "" {
		in.FullName = in.Username
	}

	user, err := svc.reader.GetByUsername(ctx, in.Username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", in.Username)
		return ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	newUser := &models.UserDB{
		UserID:       uuid.New(),
		Username:     in.Username,
		PasswordHash: string(hashedPassword),
		FullName:     in.FullName,
		Gender:       in.Gender,
		Age:          in.Age,
		AvatarURL:    DefaultAvatarURL(in.FullName),
	}

	if err := svc.writer.Save(ctx, newUser); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user, applies a lapsed streak reset and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if err := svc.applyStreakReset(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Me returns the current user with dreams, matches and counters.
func (svc *AuthService) Me(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := svc.applyStreakReset(ctx, user); err != nil {
		return nil, err
	}

	dreams, err := svc.dreams.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list dreams", "userID", userID, "err", err)
		return nil, err
	}

	matches, err := svc.matches.ListForUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list matches", "userID", userID, "err", err)
		return nil, err
	}

	counts, err := svc.reader.GetCounts(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get counts", "userID", userID, "err", err)
		return nil, err
	}

	return &Profile{UserDB: user, Dreams: dreams, Matches: matches, Counts: *counts}, nil
}

// UpdateProfile sets the user's bio and avatar URL. Nil fields are left unchanged.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, bio, avatarURL *string) (*models.UserDB, error) {
	if bio != nil && utf8.RuneCountInString(*bio) > maxBioLen {
		return nil, ErrBioTooLong
	}
	if avatarURL != nil {
		trimmed := strings.TrimSpace(*avatarURL)
		avatarURL = &trimmed
	}

	user, err := svc.writer.UpdateProfile(ctx, userID, bio, avatarURL)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// applyStreakReset persists a lapsed streak and corrects the user in place.
func (svc *AuthService) applyStreakReset(ctx context.Context, user *models.UserDB) error {
	result := CalculateStreak(user.LastPostedAt, user.StreakCount, time.Now())
	if !result.ShouldReset || user.StreakCount == 0 {
		return nil
	}

	if err := svc.writer.ResetStreak(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to reset streak", "userID", user.UserID, "err", err)
		return err
	}
	user.StreakCount = result.NewStreak
	return nil
}

// DefaultAvatarURL returns a generated initials avatar for a display name.
func DefaultAvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
