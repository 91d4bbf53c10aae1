package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 14, 21, 30, 0, 0, time.Local)
}

func TestMoodService_SaveMood(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockMoodWriter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	want := models.MoodEntry{
		Username:  "alice",
		Mood:      models.MoodCalm,
		Intensity: models.IntPtr(70),
		Date:      time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local),
	}

	writer.EXPECT().Save(ctx, want).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte("alice"), msgs[0].Key)

			var event models.MoodEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, "2026-03-14", event.Date)
			assert.Equal(t, models.MoodCalm, event.Mood)
			assert.Equal(t, 70, *event.Intensity)
			return nil
		})

	svc := services.NewMoodService(writer, nil, kafkaWriter, services.WithClock(fixedClock))
	got, err := svc.SaveMood(ctx, "alice", models.MoodCalm, models.IntPtr(70))

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMoodService_SaveMood_WithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockMoodWriter(ctrl)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc := services.NewMoodService(writer, nil, nil, services.WithClock(fixedClock))
	got, err := svc.SaveMood(context.Background(), "alice", models.MoodTired, nil)

	assert.NoError(t, err)
	assert.Nil(t, got.Intensity)
}

func TestMoodService_SaveMood_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("write error", func(t *testing.T) {
		writer := services.NewMockMoodWriter(ctrl)
		kafkaWriter := services.NewMockKafkaWriter(ctrl)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		svc := services.NewMoodService(writer, nil, kafkaWriter)
		_, err := svc.SaveMood(context.Background(), "alice", models.MoodSad, nil)
		assert.EqualError(t, err, "db error")
	})

	t.Run("publish error is not returned", func(t *testing.T) {
		writer := services.NewMockMoodWriter(ctrl)
		kafkaWriter := services.NewMockKafkaWriter(ctrl)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		svc := services.NewMoodService(writer, nil, kafkaWriter)
		_, err := svc.SaveMood(context.Background(), "alice", models.MoodSad, models.IntPtr(5))
		assert.NoError(t, err)
	})
}

func TestMoodService_GetHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockMoodReader(ctrl)
	svc := services.NewMoodService(nil, reader, nil)

	history := []models.MoodEntry{{Username: "alice", Mood: models.MoodHappy}}
	reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(history, nil)
	reader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(nil, errors.New("db error"))

	got, err := svc.GetHistory(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, history, got)

	_, err = svc.GetHistory(context.Background(), "bob")
	assert.EqualError(t, err, "db error")
}
