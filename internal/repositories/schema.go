package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS moods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL REFERENCES users(username),
		mood TEXT NOT NULL,
		intensity INTEGER,
		date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_moods_username ON moods (username, id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username VARCHAR(100) PRIMARY KEY,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS moods (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(100) NOT NULL REFERENCES users(username),
		mood TEXT NOT NULL,
		intensity INTEGER,
		date VARCHAR(10) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_moods_username ON moods (username, id)`,
}

// Migrate creates the users and moods tables if they do not exist yet.
// The dialect is picked from the driver name the db was opened with.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var statements []string
	switch db.DriverName() {
	case "pgx", "postgres":
		statements = postgresSchema
	default:
		statements = sqliteSchema
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("migration failed", "driver", db.DriverName(), "error", err)
			return fmt.Errorf("migrate: %w", err)
		}
	}

	logger.Log.Infow("schema is up to date", "driver", db.DriverName())
	return nil
}
