package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/sbilibin2017/dream-social/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_Publish(t *testing.T) {
	evt := models.Event{EventID: "e1", Type: models.EventDreamCreated, UserID: "u1", SubjectID: "d1"}

	t.Run("writes keyed message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockKafkaWriter(ctrl)

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte("u1"), msgs[0].Key)

			var got models.Event
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, evt, got)
			return nil
		})

		services.NewEventPublisher(writer).Publish(context.Background(), evt)
	})

	t.Run("several events go out in one write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockKafkaWriter(ctrl)
		match := models.Event{EventID: "e2", Type: models.EventMatchCreated, UserID: "u1", SubjectID: "m1", TargetID: "u2"}

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 2)
			assert.Equal(t, []byte(models.EventDreamCreated), msgs[0].Headers[0].Value)
			assert.Equal(t, []byte(models.EventMatchCreated), msgs[1].Headers[0].Value)
			return nil
		}).Times(1)

		services.NewEventPublisher(writer).Publish(context.Background(), evt, match)
	})

	t.Run("no events skips the writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockKafkaWriter(ctrl)

		services.NewEventPublisher(writer).Publish(context.Background())
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := services.NewMockKafkaWriter(ctrl)
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		services.NewEventPublisher(writer).Publish(context.Background(), evt)
	})

	t.Run("nil writer skips", func(t *testing.T) {
		services.NewEventPublisher(nil).Publish(context.Background(), evt)

		var p *services.EventPublisher
		p.Publish(context.Background(), evt)
	})
}
