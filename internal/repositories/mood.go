package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

// MoodWriteRepository appends mood entries.
type MoodWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewMoodWriteRepository creates a repository that writes inside the request
// transaction returned by txGetter when there is one.
func NewMoodWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MoodWriteRepository {
	return &MoodWriteRepository{db: db, txGetter: txGetter}
}

// Save appends entry to the moods table.
func (r *MoodWriteRepository) Save(ctx context.Context, entry models.MoodEntry) error {
	query := r.db.Rebind(`
		INSERT INTO moods (username, mood, intensity, date)
		VALUES (?, ?, ?, ?)
	`)
	args := []any{entry.Username, entry.Mood, entry.Intensity, entry.DateString()}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// MoodReadRepository reads mood history.
type MoodReadRepository struct {
	db *sqlx.DB
}

func NewMoodReadRepository(db *sqlx.DB) *MoodReadRepository {
	return &MoodReadRepository{db: db}
}

// GetByUsername returns every entry of username in insertion order.
func (r *MoodReadRepository) GetByUsername(ctx context.Context, username string) ([]models.MoodEntry, error) {
	query := r.db.Rebind(`
		SELECT id, username, mood, intensity, date
		FROM moods
		WHERE username = ?
		ORDER BY id
	`)

	var rows []models.MoodDB
	err := r.db.SelectContext(ctx, &rows, query, username)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	history := make([]models.MoodEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.Entry()
		if err != nil {
			return nil, fmt.Errorf("mood %d: %w", row.ID, err)
		}
		history = append(history, entry)
	}

	return history, nil
}
