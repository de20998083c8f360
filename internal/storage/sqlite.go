// Package storage provides SQLite-based persistence for committed edit box
// entries. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/consolekit/internal/adt"
)

// Store manages the SQLite database connection for entry persistence.
type Store struct {
	db *sql.DB
}

// Entry is one committed value.
type Entry struct {
	ID        int64
	Window    string
	Type      adt.DataType
	Text      string
	Number    int
	CreatedAt time.Time
}

// Value returns the entry as the value that was committed.
func (e Entry) Value() adt.Value {
	if e.Type == adt.TypeInt {
		return adt.IntValue(e.Number)
	}
	return adt.StringValue(e.Text)
}

// WindowSummary counts the entries committed by one window.
type WindowSummary struct {
	Window string
	Count  int
	Last   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			window TEXT NOT NULL,
			type INTEGER NOT NULL,
			text TEXT NOT NULL DEFAULT '',
			number INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_entries_window ON entries(window, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveEntry records a value committed by the named window.
// Returns the ID of the inserted record.
func (s *Store) SaveEntry(window string, v adt.Value) (int64, error) {
	var (
		text   string
		number int
		ok     bool
	)
	switch v.Type {
	case adt.TypeString:
		text, ok = v.Data.(string)
	case adt.TypeInt:
		number, ok = v.Data.(int)
	}
	if !ok {
		return 0, fmt.Errorf("storage: cannot save %s value holding %T", v.Type, v.Data)
	}

	result, err := s.db.Exec(
		"INSERT INTO entries (window, type, text, number) VALUES (?, ?, ?, ?)",
		window, int(v.Type), text, number,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Sink returns a data sink that saves committed values under window.
func (s *Store) Sink(window string) adt.Sink {
	return adt.SinkFunc(func(v adt.Value) error {
		_, err := s.SaveEntry(window, v)
		return err
	})
}

// Recent retrieves the latest entries of the given window, newest first.
// An empty window name selects every window.
func (s *Store) Recent(window string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, window, type, text, number, created_at
		 FROM entries
		 WHERE ? = '' OR window = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		window, window, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var typ int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Window, &typ, &e.Text, &e.Number, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Type = adt.DataType(typ)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Windows summarizes the windows that have committed entries, sorted by name.
func (s *Store) Windows() ([]WindowSummary, error) {
	rows, err := s.db.Query(
		`SELECT window, COUNT(*), MAX(created_at)
		 FROM entries
		 GROUP BY window
		 ORDER BY window`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query windows: %w", err)
	}
	defer rows.Close()

	var result []WindowSummary
	for rows.Next() {
		var w WindowSummary
		var last any
		if err := rows.Scan(&w.Window, &w.Count, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		w.Last = parseTime(last)
		result = append(result, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// ClearWindow deletes all entries of the given window.
func (s *Store) ClearWindow(window string) error {
	_, err := s.db.Exec("DELETE FROM entries WHERE window = ?", window)
	if err != nil {
		return fmt.Errorf("storage: cannot clear entries: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
