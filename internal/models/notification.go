package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types
const (
	NotificationLike    = "LIKE"
	NotificationFollow  = "FOLLOW"
	NotificationMatch   = "MATCH"
	NotificationComment = "COMMENT"
)

// NotificationDB represents a notification row
type NotificationDB struct {
	NotificationID uuid.UUID  `json:"id" db:"notification_id"`
	Type           string     `json:"type" db:"type"`
	SenderID       uuid.UUID  `json:"senderId" db:"sender_id"`
	ReceiverID     uuid.UUID  `json:"receiverId" db:"receiver_id"`
	DreamID        *uuid.UUID `json:"dreamId,omitempty" db:"dream_id"`
	Message        string     `json:"message" db:"message"`
	Read           bool       `json:"read" db:"read"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

// Notification is a notification with its sender's profile.
type Notification struct {
	NotificationDB
	Sender UserSummary `json:"sender" db:"sender"`
}
