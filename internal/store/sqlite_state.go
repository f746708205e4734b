package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"treeline-cli/internal/outline"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteFileName = "outline.sqlite"

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL gives one writer + many readers across processes; busy_timeout
	// avoids "database is locked" flakiness when two sessions race.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

func migrateSQLiteState(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS state_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		// One outline per workspace; the doc column is the serialized
		// cursor and is opaque to the store.
		`CREATE TABLE IF NOT EXISTS outline (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			doc BLOB NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (s Store) loadSQLite(ctx context.Context) (*outline.Cursor, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := migrateSQLiteState(ctx, db); err != nil {
		return nil, err
	}
	if _, err := ensureMetaUUID(ctx, db, "workspace_id"); err != nil {
		return nil, err
	}

	var doc []byte
	err = db.QueryRowContext(ctx, `SELECT doc FROM outline WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c outline.Cursor
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s Store) saveSQLite(ctx context.Context, c *outline.Cursor) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrateSQLiteState(ctx, db); err != nil {
		return err
	}

	if c == nil {
		_, err := db.ExecContext(ctx, `DELETE FROM outline WHERE id = 1`)
		return err
	}

	doc, err := json.Marshal(c)
	if err != nil {
		return err
	}
	nowMs := time.Now().UTC().UnixMilli()
	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO outline(id, doc, updated_at_unixms) VALUES(1, ?, ?)`,
		doc, nowMs)
	return err
}

// WorkspaceID returns the stable id minted for this workspace on first open.
func (s Store) WorkspaceID(ctx context.Context) (string, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return "", err
	}
	defer db.Close()

	if err := migrateSQLiteState(ctx, db); err != nil {
		return "", err
	}
	return ensureMetaUUID(ctx, db, "workspace_id")
}

func ensureMetaUUID(ctx context.Context, db *sql.DB, key string) (string, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT v FROM state_meta WHERE k = ?`, key).Scan(&v)
	if err == nil && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}
	id := uuid.NewString()
	if _, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO state_meta(k, v) VALUES(?, ?)`, key, id); err != nil {
		return "", err
	}
	return id, nil
}
