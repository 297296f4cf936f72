package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/models"
)

//go:generate mockgen -source=messages.go -destination=messages_mock.go -package=handlers

// Messenger reads and sends direct messages.
type Messenger interface {
	Conversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error)
	Messages(ctx context.Context, userID, otherUserID uuid.UUID) ([]models.Message, error)
	Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (*models.Message, error)
}

// SendMessageRequest represents the JSON body for a direct message
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// required: true
	// default: Hi! I had the same dream
	Content string `json:"content"`
}

// NewConversationsHandler returns an HTTP handler listing conversations.
// @Summary Conversations
// @Description Conversations of the current user, most recent first.
// @Tags messages
// @Produce json
// @Success 200 {array} models.Conversation
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /messages/conversations [get]
func NewConversationsHandler(svc Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		conversations, err := svc.Conversations(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, conversations)
	}
}

// NewMessagesHandler returns an HTTP handler for the history with another user.
// @Summary Message history
// @Description Messages in both directions, oldest first. Incoming messages are marked as read.
// @Tags messages
// @Produce json
// @Param userId path string true "Other user ID"
// @Success 200 {array} models.Message
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /messages/{userId} [get]
func NewMessagesHandler(svc Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		otherID, ok := uuidParam(w, r, "userId")
		if !ok {
			return
		}

		messages, err := svc.Messages(r.Context(), userID, otherID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

// NewSendMessageHandler returns an HTTP handler sending a direct message.
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Param userId path string true "Receiver ID"
// @Param sendMessageRequest body handlers.SendMessageRequest true "Message"
// @Success 200 {object} models.Message
// @Failure 400 {object} handlers.ErrorResponse "Content is required"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /messages/{userId} [post]
func NewSendMessageHandler(svc Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		receiverID, ok := uuidParam(w, r, "userId")
		if !ok {
			return
		}

		var req SendMessageRequest
		if !decodeBody(w, r, &req) {
			return
		}

		msg, err := svc.Send(r.Context(), userID, receiverID, req.Content)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, msg)
	}
}
