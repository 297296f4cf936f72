package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/models"
)

//go:generate mockgen -source=notifications.go -destination=notifications_mock.go -package=handlers

// NotificationReader lists and acknowledges notifications.
type NotificationReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// NewNotificationsHandler returns an HTTP handler listing notifications.
// @Summary Notifications
// @Description The 50 most recent notifications of the current user.
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func NewNotificationsHandler(svc NotificationReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		notifications, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, notifications)
	}
}

// NewMarkNotificationReadHandler returns an HTTP handler marking one notification as read.
// @Summary Mark notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Notification not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func NewMarkNotificationReadHandler(svc NotificationReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		notificationID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		if err := svc.MarkRead(r.Context(), userID, notificationID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// NewMarkAllNotificationsReadHandler returns an HTTP handler marking every notification as read.
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} handlers.SuccessResponse
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/read-all [put]
func NewMarkAllNotificationsReadHandler(svc NotificationReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := svc.MarkAllRead(r.Context(), userID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
