package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"perf-bi/internal/config/configs"
)

// OpenSQLite opens the SQLite database at cfg.Path and applies migrations.
// SQLite allows a single writer, so the pool is limited to one connection.
func OpenSQLite(cfg configs.SQLite) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.Path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err = MigrateSQLite(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return conn, nil
}
