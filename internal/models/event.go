package models

import "time"

// MoodEvent is published to Kafka after a mood entry has been stored.
type MoodEvent struct {
	Username   string    `json:"username"`
	Mood       string    `json:"mood"`
	Intensity  *int      `json:"intensity,omitempty"`
	Date       string    `json:"date"`
	RecordedAt time.Time `json:"recorded_at"`
}
