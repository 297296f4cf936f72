package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes domain events to Kafka. A nil writer disables publishing.
type EventPublisher struct {
	kafkaWriter KafkaWriter
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(kafkaWriter KafkaWriter) *EventPublisher {
	return &EventPublisher{kafkaWriter: kafkaWriter}
}

func newEvent(eventType string, userID, subjectID uuid.UUID) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		SubjectID: subjectID.String(),
	}
}

// Publish writes the events in a single batch, each keyed by its acting user.
// Failures are logged, never returned.
func (p *EventPublisher) Publish(ctx context.Context, evts ...models.Event) {
	if len(evts) == 0 {
		return
	}
	if p == nil || p.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "count", len(evts))
		return
	}

	msgs := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		data, err := json.Marshal(evt)
		if err != nil {
			logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(evt.UserID),
			Value: data,
			Headers: []kafka.Header{
				{Key: "type", Value: []byte(evt.Type)},
			},
		})
	}
	if len(msgs) == 0 {
		return
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msgs...); err != nil {
		logger.Log.Errorw("Failed to publish events to Kafka", "count", len(msgs), "error", err)
	} else {
		logger.Log.Infow("Events published to Kafka", "count", len(msgs))
	}
}
