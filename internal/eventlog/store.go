// Package eventlog persists backend attempt records to SQLite for
// offline inspection via the events CLI.
package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/asengupta/notequiz/internal/quiz"
)

// Store is an append-only attempt log backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the attempt log at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts TEXT NOT NULL,
			request_id TEXT NOT NULL,
			engine TEXT NOT NULL,
			status TEXT NOT NULL,
			latency_ms INTEGER NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			prompt_chars INTEGER NOT NULL,
			output_chars INTEGER NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create event log schema: %w", err)
	}
	return nil
}

// Record implements quiz.EventSink.
func (s *Store) Record(ctx context.Context, a quiz.Attempt) error {
	errMsg := ""
	if a.Err != nil {
		errMsg = a.Err.Error()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts (ts, request_id, engine, status, latency_ms, error, prompt_chars, output_chars)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		a.RequestID,
		a.Engine,
		string(a.Status),
		a.Latency.Milliseconds(),
		errMsg,
		a.PromptChars,
		a.OutputChars,
	)
	return err
}

// Entry is one stored attempt row.
type Entry struct {
	ID          int64
	Timestamp   time.Time
	RequestID   string
	Engine      string
	Status      string
	LatencyMs   int64
	Error       string
	PromptChars int
	OutputChars int
}

// Recent returns the most recent attempts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ts, request_id, engine, status, latency_ms, error, prompt_chars, output_chars
		FROM attempts
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.RequestID, &e.Engine, &e.Status, &e.LatencyMs, &e.Error, &e.PromptChars, &e.OutputChars); err != nil {
			return nil, err
		}
		if t, perr := time.Parse(time.RFC3339, ts); perr == nil {
			e.Timestamp = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
