package models

import (
	"time"

	"github.com/google/uuid"
)

// DreamDB represents a dream post in the database
type DreamDB struct {
	DreamID     uuid.UUID `json:"id" db:"dream_id"`                  // Primary key
	UserID      uuid.UUID `json:"userId" db:"user_id"`               // Owner
	Description string    `json:"description" db:"description"`      // Text the images were generated from
	ImageURL    string    `json:"imageUrl" db:"image_url"`           // Chosen generated image
	VideoURL    *string   `json:"videoUrl,omitempty" db:"video_url"` // Optional generated video
	Views       int       `json:"views" db:"views"`                  // View counter
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`         // Creation timestamp
}

// FeedItem is a dream enriched with its owner and counters for a given viewer.
type FeedItem struct {
	DreamDB
	User          UserSummary `json:"user" db:"user"`
	LikesCount    int         `json:"likesCount" db:"likes_count"`
	CommentsCount int         `json:"commentsCount" db:"comments_count"`
	IsLiked       bool        `json:"isLiked" db:"is_liked"`
}

// CommentDB represents a comment on a dream
type CommentDB struct {
	CommentID uuid.UUID `json:"id" db:"comment_id"`
	DreamID   uuid.UUID `json:"dreamId" db:"dream_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Comment is a comment together with its author.
type Comment struct {
	CommentDB
	User UserSummary `json:"user" db:"user"`
}
