package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

// ErrApply возвращается при ошибке создания схемы
var ErrApply = errors.New("schema: failed to apply")

var postgresStatements = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		desk_id INTEGER NOT NULL,
		date DATE NOT NULL,
		booked_by TEXT NOT NULL,
		note TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (desk_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings (date)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		desired_days INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS desks (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`INSERT INTO settings (key, value) VALUES ('num_desks', '6') ON CONFLICT (key) DO NOTHING`,
}

var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		desk_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		booked_by TEXT NOT NULL,
		note TEXT,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (desk_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings (date)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		desired_days INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS desks (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`INSERT INTO settings (key, value) VALUES ('num_desks', '6') ON CONFLICT (key) DO NOTHING`,
}

// Apply создает таблицы, если их нет. Повторный вызов безопасен.
func Apply(ctx context.Context, db dbmetrics.DBExecutor, dialect psqlbuilder.Dialect) error {
	statements := postgresStatements
	if dialect == psqlbuilder.SQLite {
		statements = sqliteStatements
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: statement %d (%s): %v", ErrApply, i, dialect, err)
		}
	}
	return nil
}
