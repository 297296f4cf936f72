package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `json:"id" db:"user_id"`                            // Primary key
	Username     string     `json:"username" db:"username"`                     // Unique username
	PasswordHash string     `json:"-" db:"password_hash"`                       // Hashed password
	FullName     string     `json:"fullName" db:"full_name"`                    // Display name
	Bio          string     `json:"bio" db:"bio"`                               // Short profile text, at most 100 characters
	AvatarURL    string     `json:"avatarUrl" db:"avatar_url"`                  // Avatar image URL
	Age          *int       `json:"age,omitempty" db:"age"`                     // Optional age
	Gender       string     `json:"gender" db:"gender"`                         // Free-form gender
	StreakCount  int        `json:"streakCount" db:"streak_count"`              // Consecutive posting days
	LastPostedAt *time.Time `json:"lastPostedAt,omitempty" db:"last_posted_at"` // Time of the latest dream, nil if never posted
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`                  // Creation timestamp
}

// UserSummary is the public projection of a user embedded in other payloads.
type UserSummary struct {
	UserID      uuid.UUID `json:"id" db:"user_id"`
	Username    string    `json:"username" db:"username"`
	FullName    string    `json:"fullName" db:"full_name"`
	AvatarURL   string    `json:"avatarUrl" db:"avatar_url"`
	StreakCount int       `json:"streakCount" db:"streak_count"`
}

// UserCounts holds follower, following and dream counters of a user.
type UserCounts struct {
	Followers int `json:"followers" db:"followers"`
	Following int `json:"following" db:"following"`
	Dreams    int `json:"dreams" db:"dreams"`
}

// UserSearchResult is a row returned by user search.
type UserSearchResult struct {
	UserID      uuid.UUID `json:"id" db:"user_id"`
	Username    string    `json:"username" db:"username"`
	FullName    string    `json:"fullName" db:"full_name"`
	AvatarURL   string    `json:"avatarUrl" db:"avatar_url"`
	Bio         string    `json:"bio" db:"bio"`
	Followers   int       `json:"followers" db:"followers"`
	Following   int       `json:"following" db:"following"`
	IsFollowing bool      `json:"isFollowing" db:"is_following"`
}
