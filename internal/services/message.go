package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/models"
)

//go:generate mockgen -source=message.go -destination=message_mock.go -package=services

// ConversationStore defines conversation operations.
type ConversationStore interface {
	GetOrCreate(ctx context.Context, ownerID, otherUserID uuid.UUID) (*models.ConversationDB, error)                           // Returns or creates the owner's row
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Conversation, error)                                        // Returns the owner's rows, most recent first
	UpdateLastMessage(ctx context.Context, conversationID uuid.UUID, content string, at time.Time, incrementUnread bool) error // Stores the preview
	ResetUnread(ctx context.Context, conversationID uuid.UUID) error                                                           // Zeroes the unread counter
}

// MessageStore defines message operations.
type MessageStore interface {
	Save(ctx context.Context, msg *models.MessageDB) error                             // Inserts a message
	ListBetween(ctx context.Context, userA, userB uuid.UUID) ([]models.Message, error) // Returns the history oldest first
	MarkRead(ctx context.Context, senderID, receiverID uuid.UUID) (int64, error)       // Flags sender-to-receiver messages as read
}

// MessageService handles direct messages between users.
type MessageService struct {
	users         UserGetter
	conversations ConversationStore
	messages      MessageStore
}

// NewMessageService creates a new MessageService instance.
func NewMessageService(users UserGetter, conversations ConversationStore, messages MessageStore) *MessageService {
	return &MessageService{users: users, conversations: conversations, messages: messages}
}

// Conversations returns the user's conversations with the other participant's profile.
func (svc *MessageService) Conversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	convs, err := svc.conversations.ListForOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list conversations", "userID", userID, "error", err)
		return nil, err
	}
	return convs, nil
}

// Messages returns the history with the other user and marks the messages
// addressed to the caller as read. The returned messages carry their state
// from before this read.
func (svc *MessageService) Messages(ctx context.Context, userID, otherUserID uuid.UUID) ([]models.Message, error) {
	own, _, err := svc.ensurePair(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}

	msgs, err := svc.messages.ListBetween(ctx, userID, otherUserID)
	if err != nil {
		logger.Log.Errorw("failed to list messages", "userID", userID, "otherUserID", otherUserID, "error", err)
		return nil, err
	}

	if _, err := svc.messages.MarkRead(ctx, otherUserID, userID); err != nil {
		logger.Log.Errorw("failed to mark messages read", "userID", userID, "otherUserID", otherUserID, "error", err)
		return nil, err
	}

	if err := svc.conversations.ResetUnread(ctx, own.ConversationID); err != nil {
		logger.Log.Errorw("failed to reset unread", "conversationID", own.ConversationID, "error", err)
		return nil, err
	}

	return msgs, nil
}

// Send delivers a message to the receiver.
func (svc *MessageService) Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	senderConv, receiverConv, err := svc.ensurePair(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}

	sender, err := svc.users.GetByID(ctx, senderID)
	if err != nil {
		logger.Log.Errorw("failed to get sender", "senderID", senderID, "error", err)
		return nil, err
	}
	if sender == nil {
		return nil, ErrUserNotFound
	}

	msg := models.MessageDB{
		MessageID:      uuid.New(),
		ConversationID: senderConv.ConversationID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
	}
	if err := svc.messages.Save(ctx, &msg); err != nil {
		logger.Log.Errorw("failed to save message", "senderID", senderID, "receiverID", receiverID, "error", err)
		return nil, err
	}

	if err := svc.conversations.UpdateLastMessage(ctx, senderConv.ConversationID, content, msg.CreatedAt, false); err != nil {
		logger.Log.Errorw("failed to update sender conversation", "conversationID", senderConv.ConversationID, "error", err)
		return nil, err
	}
	if err := svc.conversations.UpdateLastMessage(ctx, receiverConv.ConversationID, content, msg.CreatedAt, true); err != nil {
		logger.Log.Errorw("failed to update receiver conversation", "conversationID", receiverConv.ConversationID, "error", err)
		return nil, err
	}

	return &models.Message{MessageDB: msg, Sender: summaryOf(sender)}, nil
}

// ensurePair validates the other participant and returns both mirrored conversation rows.
func (svc *MessageService) ensurePair(ctx context.Context, userID, otherUserID uuid.UUID) (*models.ConversationDB, *models.ConversationDB, error) {
	if userID == otherUserID {
		return nil, nil, ErrSelfMessage
	}

	other, err := svc.users.GetByID(ctx, otherUserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", otherUserID, "error", err)
		return nil, nil, err
	}
	if other == nil {
		return nil, nil, ErrUserNotFound
	}

	own, err := svc.conversations.GetOrCreate(ctx, userID, otherUserID)
	if err != nil {
		logger.Log.Errorw("failed to ensure conversation", "ownerID", userID, "otherUserID", otherUserID, "error", err)
		return nil, nil, err
	}
	mirror, err := svc.conversations.GetOrCreate(ctx, otherUserID, userID)
	if err != nil {
		logger.Log.Errorw("failed to ensure conversation", "ownerID", otherUserID, "otherUserID", userID, "error", err)
		return nil, nil, err
	}

	return own, mirror, nil
}
