package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/models"
)

// NotificationStreamRepository fans notifications out to live subscribers over Redis pub/sub.
type NotificationStreamRepository struct {
	client *redis.Client
}

func NewNotificationStreamRepository(client *redis.Client) *NotificationStreamRepository {
	return &NotificationStreamRepository{client: client}
}

func notificationChannel(userID uuid.UUID) string {
	return fmt.Sprintf("notifications:%s", userID)
}

// Publish sends the notification to the receiver's channel.
func (r *NotificationStreamRepository) Publish(ctx context.Context, n *models.Notification) error {
	key := notificationChannel(n.ReceiverID)

	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	receivers, err := r.client.Publish(ctx, key, payload).Result()

	logger.Log.Infow(
		"publish",
		"key", key,
		"result", receivers,
		"error", err,
	)

	return err
}

// Subscribe returns raw notification payloads published for the user.
// The channel is closed once ctx is done or the subscription breaks.
func (r *NotificationStreamRepository) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []byte, error) {
	key := notificationChannel(userID)

	pubsub := r.client.Subscribe(ctx, key)
	if _, err := pubsub.Receive(ctx); err != nil {
		logger.Log.Infow("subscribe", "key", key, "error", err)
		pubsub.Close()
		return nil, err
	}

	out := make(chan []byte, 16)
	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
