package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sbilibin2017/dream-social/internal/logger"
)

//go:generate mockgen -source=notification_stream.go -destination=notification_stream_mock.go -package=handlers

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = streamPongWait * 9 / 10
)

// NotificationSubscriber streams serialized notifications for a user.
type NotificationSubscriber interface {
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []byte, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NewNotificationStreamHandler upgrades the request to a WebSocket and pushes
// each new notification of the current user as a JSON text frame.
// @Summary Notification stream
// @Description WebSocket. The token may be passed as the token query parameter.
// @Tags notifications
// @Param token query string false "JWT token"
// @Success 101 "Switching protocols"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/stream [get]
func NewNotificationStreamHandler(svc NotificationSubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		payloads, err := svc.Subscribe(ctx, userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Warnw("websocket upgrade failed", "userID", userID, "err", err)
			return
		}
		defer conn.Close()

		logger.Log.Infow("notification stream opened", "userID", userID)
		go readPump(conn, cancel)
		writePump(ctx, conn, payloads)
		logger.Log.Infow("notification stream closed", "userID", userID)
	}
}

// readPump discards client frames and cancels the stream once the peer goes away.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, payloads <-chan []byte) {
	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(streamWriteWait),
			)
			return
		case payload, ok := <-payloads:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
