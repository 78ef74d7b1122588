package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemas = map[string][]string{
	"pgx": {
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category INTEGER NOT NULL,
			difficulty INTEGER NOT NULL
		)`,
	},
	SQLiteDriverName: {
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category INTEGER NOT NULL,
			difficulty INTEGER NOT NULL
		)`,
	},
}

// EnsureSchema creates the categories and questions tables if they are missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not create schema: %w", err)
		}
	}
	return nil
}
