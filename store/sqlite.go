package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/raushankrgupta/product-clipper/models"
	_ "modernc.org/sqlite"
)

const settingsSchema = `CREATE TABLE IF NOT EXISTS settings (
	field   TEXT PRIMARY KEY,
	enabled INTEGER NOT NULL
)`

// SQLiteStore keeps one row per toggle
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the database at path
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, stmt := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000", settingsSchema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to prepare database: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (models.Settings, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT field, enabled FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	saved := models.Settings{}
	for rows.Next() {
		var field string
		var enabled int
		if err := rows.Scan(&field, &enabled); err != nil {
			return nil, fmt.Errorf("scan settings: %w", err)
		}
		saved[models.FieldKey(field)] = enabled != 0
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return saved.WithDefaults(), nil
}

func (s *SQLiteStore) Save(ctx context.Context, settings models.Settings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO settings (field, enabled) VALUES (?, ?)
		ON CONFLICT(field) DO UPDATE SET enabled = excluded.enabled`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, enabled := range settings.WithDefaults() {
		v := 0
		if enabled {
			v = 1
		}
		if _, err := stmt.ExecContext(ctx, string(key), v); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close(ctx context.Context) error {
	return s.db.Close()
}
