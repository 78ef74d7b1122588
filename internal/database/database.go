package database

import (
	"database/sql"
	"fmt"
	"strings"

	"trivia-api/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// SQLiteDriverName is the go-sqlite3 driver registered with a Unicode-aware
// unicode_lower(text) SQL function. sqlite's built-in LOWER folds ASCII only.
const SQLiteDriverName = "sqlite3_unicode"

// SQLiteLowerFunc is the SQL function name registered on every sqlite connection.
const SQLiteLowerFunc = "unicode_lower"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(SQLiteLowerFunc, strings.ToLower, true)
		},
	})
	sqlx.BindDriver(SQLiteDriverName, sqlx.QUESTION)
}

// DriverName maps a configured db.driver to the registered database/sql driver.
func DriverName(driver string) string {
	if driver == config.DriverSQLite {
		return SQLiteDriverName
	}
	return driver
}

// NewSQLXDB opens and pings a database for the configured driver.
func NewSQLXDB(cfg config.DBConfig, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(DriverName(cfg.Driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.Driver == config.DriverSQLite {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}
