package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sbilibin2017/dream-social/internal/middlewares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationStreamHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNotificationSubscriber(ctrl)
	userID := uuid.New()

	payloads := make(chan []byte, 1)
	subscribed := make(chan context.Context, 1)
	mockSvc.EXPECT().
		Subscribe(gomock.Any(), userID).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID) (<-chan []byte, error) {
			subscribed <- ctx
			return payloads, nil
		})

	handler := NewNotificationStreamHandler(mockSvc)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r.WithContext(middlewares.WithUserID(r.Context(), userID)))
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	var streamCtx context.Context
	select {
	case streamCtx = <-subscribed:
	case <-time.After(time.Second):
		t.Fatal("subscription was not opened")
	}

	payloads <- []byte(`{"type":"LIKE","message":"liked your dream"}`)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	msgType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)
	assert.JSONEq(t, `{"type":"LIKE","message":"liked your dream"}`, string(data))

	require.NoError(t, conn.Close())

	select {
	case <-streamCtx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not cancelled after the client left")
	}
}

func TestNotificationStreamHandler_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNotificationSubscriber(ctrl)
	userID := uuid.New()

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewNotificationStreamHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/notifications/stream", nil, uuid.Nil, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("subscribe fails", func(t *testing.T) {
		mockSvc.EXPECT().Subscribe(gomock.Any(), userID).Return(nil, errors.New("redis down"))

		w := httptest.NewRecorder()
		NewNotificationStreamHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/notifications/stream", nil, userID, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("not a websocket request", func(t *testing.T) {
		mockSvc.EXPECT().Subscribe(gomock.Any(), userID).Return(make(chan []byte), nil)

		w := httptest.NewRecorder()
		NewNotificationStreamHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/notifications/stream", nil, userID, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
