// Package storage keeps an optional sqlite snapshot of the task list so it
// survives restarts. The task list itself never depends on it.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"taskring/internal/tasklist"
)

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dbPath, err)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// Load returns the saved list in display order and whether anything was
// saved yet.
func (s *Store) Load(ctx context.Context) ([]tasklist.Task, bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text, done FROM tasks ORDER BY position;`)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var tasks []tasklist.Task
	for rows.Next() {
		var t tasklist.Task
		var doneInt int
		if err := rows.Scan(&t.ID, &t.Text, &doneInt); err != nil {
			return nil, false, err
		}
		t.Done = doneInt == 1
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(tasks) > 0 {
		return tasks, true, nil
	}
	saved, err := s.hasSnapshot(ctx)
	return tasks, saved, err
}

// Save replaces the stored snapshot with tasks in a single transaction.
func (s *Store) Save(ctx context.Context, tasks []tasklist.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks;`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks (id, position, text, done, updated_at) VALUES (?, ?, ?, ?, ?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for i, t := range tasks {
		done := 0
		if t.Done {
			done = 1
		}
		if _, err := stmt.ExecContext(ctx, t.ID, i, t.Text, done, now); err != nil {
			return fmt.Errorf("save task %d: %w", t.ID, err)
		}
	}
	if err := s.markSaved(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

// An emptied list must not bring the seed data back on the next launch, so
// the first save is recorded separately from the rows.
func (s *Store) markSaved(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES ('saved', '1');`)
	return err
}

func (s *Store) hasSnapshot(ctx context.Context) (bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'saved';`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
