package models

import (
	"time"

	"github.com/google/uuid"
)

// ConversationDB is one participant's mailbox entry for a chat with another user.
// Every pair of users that has talked owns two mirrored rows.
type ConversationDB struct {
	ConversationID uuid.UUID  `json:"id" db:"conversation_id"`
	OwnerID        uuid.UUID  `json:"userId" db:"owner_id"`
	OtherUserID    uuid.UUID  `json:"otherUserId" db:"other_user_id"`
	LastMessage    string     `json:"lastMessage" db:"last_message"`
	LastMessageAt  *time.Time `json:"lastMessageAt,omitempty" db:"last_message_at"`
	UnreadCount    int        `json:"unreadCount" db:"unread_count"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

// Conversation is a conversation row with the other participant's profile.
type Conversation struct {
	ConversationDB
	OtherUser UserSummary `json:"otherUser" db:"other_user"`
}

// MessageDB represents a direct message
type MessageDB struct {
	MessageID      uuid.UUID `json:"id" db:"message_id"`
	ConversationID uuid.UUID `json:"conversationId" db:"conversation_id"`
	SenderID       uuid.UUID `json:"senderId" db:"sender_id"`
	ReceiverID     uuid.UUID `json:"receiverId" db:"receiver_id"`
	Content        string    `json:"content" db:"content"`
	Read           bool      `json:"read" db:"read"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// Message is a message with its sender's profile.
type Message struct {
	MessageDB
	Sender UserSummary `json:"sender" db:"sender"`
}
