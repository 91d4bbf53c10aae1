package services

//go:generate mockgen -source=mood.go -destination=mood_mock.go -package=services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/segmentio/kafka-go"
)

// MoodWriter appends mood entries.
type MoodWriter interface {
	Save(ctx context.Context, entry models.MoodEntry) error
}

// MoodReader reads a user's mood history in insertion order.
type MoodReader interface {
	GetByUsername(ctx context.Context, username string) ([]models.MoodEntry, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MoodService records moods and reads history.
type MoodService struct {
	writeRepo   MoodWriter
	readRepo    MoodReader
	kafkaWriter KafkaWriter
	now         func() time.Time

	writeMu sync.Mutex
}

// MoodServiceOption configures a MoodService.
type MoodServiceOption func(*MoodService)

// WithClock overrides the clock used to date new entries.
func WithClock(now func() time.Time) MoodServiceOption {
	return func(s *MoodService) {
		s.now = now
	}
}

// NewMoodService creates a new MoodService. kafkaWriter may be nil.
func NewMoodService(writeRepo MoodWriter, readRepo MoodReader, kafkaWriter KafkaWriter, opts ...MoodServiceOption) *MoodService {
	s := &MoodService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveMood appends an entry dated today and returns it.
func (s *MoodService) SaveMood(ctx context.Context, username, mood string, intensity *int) (models.MoodEntry, error) {
	entry := models.MoodEntry{
		Username:  username,
		Mood:      mood,
		Intensity: intensity,
		Date:      models.Today(s.now()),
	}

	s.writeMu.Lock()
	err := s.writeRepo.Save(ctx, entry)
	s.writeMu.Unlock()
	if err != nil {
		logger.Log.Errorw("failed to save mood", "username", username, "mood", mood, "error", err)
		return models.MoodEntry{}, err
	}

	s.publishMood(ctx, entry)
	return entry, nil
}

// GetHistory returns every entry of username in the order they were recorded.
func (s *MoodService) GetHistory(ctx context.Context, username string) ([]models.MoodEntry, error) {
	history, err := s.readRepo.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get mood history", "username", username, "error", err)
		return nil, err
	}
	return history, nil
}

// publishMood publishes a mood.saved event to Kafka.
func (s *MoodService) publishMood(ctx context.Context, entry models.MoodEntry) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "username", entry.Username)
		return
	}

	event := models.MoodEvent{
		Username:   entry.Username,
		Mood:       entry.Mood,
		Intensity:  entry.Intensity,
		Date:       entry.DateString(),
		RecordedAt: s.now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal mood event for Kafka", "username", entry.Username, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entry.Username),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish mood event to Kafka", "username", entry.Username, "error", err)
	} else {
		logger.Log.Infow("Mood event published to Kafka", "username", entry.Username, "mood", entry.Mood)
	}
}
