package models

import (
	"time"

	"github.com/google/uuid"
)

// Match statuses
const (
	MatchStatusPending = "pending"
)

// MatchDB is a suggested connection between two users with overlapping dreams.
// One row exists per unordered pair of users.
type MatchDB struct {
	MatchID    uuid.UUID `json:"id" db:"match_id"`
	SenderID   uuid.UUID `json:"senderId" db:"sender_id"`     // User whose post produced the match
	ReceiverID uuid.UUID `json:"receiverId" db:"receiver_id"` // User whose earlier dream overlapped
	Score      float64   `json:"score" db:"score"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Match is a match row seen from one participant, with the other participant's profile.
type Match struct {
	MatchDB
	User UserSummary `json:"user" db:"user"`
}
