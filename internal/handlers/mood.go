package handlers

//go:generate mockgen -source=mood.go -destination=mood_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

// MoodSaver records a mood for a user.
type MoodSaver interface {
	SaveMood(ctx context.Context, username, mood string, intensity *int) (models.MoodEntry, error)
}

// HistoryGetter returns the mood history of a user.
type HistoryGetter interface {
	GetHistory(ctx context.Context, username string) ([]models.MoodEntry, error)
}

// SaveMoodRequest represents the JSON body of a mood submission
// swagger:model SaveMoodRequest
type SaveMoodRequest struct {
	// Mood label
	// required: true
	// default: Calm 😌
	Mood string `json:"mood"`

	// Intensity percentage, 0 to 100
	// required: false
	// default: 70
	Intensity *int `json:"intensity,omitempty"`
}

// MoodOptionsResponse lists the preset mood labels
// swagger:model MoodOptionsResponse
type MoodOptionsResponse struct {
	Options []string `json:"options"`
}

// HistoryResponse holds the history of the logged-in user
// swagger:model HistoryResponse
type HistoryResponse struct {
	Entries []models.MoodEntry `json:"entries"`
}

// NewMoodOptionsHandler returns the preset mood labels.
// @Summary Mood options
// @Tags moods
// @Produce json
// @Success 200 {object} handlers.MoodOptionsResponse
// @Router /moods/options [get]
func NewMoodOptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MoodOptionsResponse{Options: models.MoodOptions()})
	}
}

// NewSaveMoodHandler returns an HTTP handler that records today's mood of the
// logged-in user.
// @Summary Save mood
// @Description Appends a mood entry dated today. The intensity is optional.
// @Tags moods
// @Accept json
// @Produce json
// @Param saveMoodRequest body handlers.SaveMoodRequest true "Mood submission"
// @Success 201 {object} models.MoodEntry "Recorded entry"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /moods [post]
// @Security BearerAuth
func NewSaveMoodHandler(svc MoodSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var req SaveMoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if strings.TrimSpace(req.Mood) == "" {
			writeError(w, http.StatusBadRequest, "mood is required")
			return
		}
		if req.Intensity != nil && (*req.Intensity < 0 || *req.Intensity > 100) {
			writeError(w, http.StatusBadRequest, "intensity must be between 0 and 100")
			return
		}

		entry, err := svc.SaveMood(r.Context(), username, req.Mood, req.Intensity)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

// NewHistoryHandler returns the history of the logged-in user in recording
// order.
// @Summary Mood history
// @Tags moods
// @Produce json
// @Success 200 {object} handlers.HistoryResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /moods [get]
// @Security BearerAuth
func NewHistoryHandler(svc HistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		history, err := svc.GetHistory(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		if history == nil {
			history = []models.MoodEntry{}
		}

		writeJSON(w, http.StatusOK, HistoryResponse{Entries: history})
	}
}
