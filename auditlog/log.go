package auditlog

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Kind enumerates the event kinds recorded by the audit log.
type Kind string

const (
	// KindOptimize records a completed (successful or failed) call to
	// PickingService.Optimize.
	KindOptimize Kind = "optimize"

	// KindCommit records a successful inventory commit.
	KindCommit Kind = "commit"

	// KindRestore records an inventory restore.
	KindRestore Kind = "restore"
)

// Log wraps a SQLite connection holding the append-only event table.
type Log struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the SQLite database at path and ensures the event
// table exists. An empty path uses an in-memory database, convenient for
// tests and the demo CLI.
func Open(path string, logger *slog.Logger) (*Log, error) {
	if path == "" {
		path = ":memory:"
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("auditlog: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("auditlog: ping: %w", err)
	}

	l := &Log{db: db, logger: logger}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("auditlog: migrate: %w", err)
	}

	return l, nil
}

// Close closes the underlying database connection.
func (l *Log) Close() error {
	return l.db.Close()
}

func (l *Log) migrate() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id      TEXT PRIMARY KEY,
			kind    TEXT NOT NULL,
			payload TEXT NOT NULL,
			at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		);
		CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind, at DESC);
	`)

	return err
}

// Append records one event. Failures are logged and swallowed: the audit
// log must never fail a picking call.
func (l *Log) Append(kind Kind, payload string) {
	id := uuid.NewString()
	if _, err := l.db.Exec(
		`INSERT INTO events (id, kind, payload) VALUES (?, ?, ?)`,
		id, string(kind), payload,
	); err != nil {
		l.logger.Warn("auditlog: append failed", "kind", kind, "error", err)
	}
}

// Recent returns up to limit most recent payloads for a given kind, newest
// first. Used by the demo CLI; not on any picking call path.
func (l *Log) Recent(kind Kind, limit int) ([]string, error) {
	rows, err := l.db.Query(
		`SELECT payload FROM events WHERE kind = ? ORDER BY at DESC, rowid DESC LIMIT ?`,
		string(kind), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("auditlog: Recent: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("auditlog: Recent scan: %w", err)
		}
		out = append(out, payload)
	}

	return out, rows.Err()
}
