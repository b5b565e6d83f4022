// Package storage provides SQLite-based persistence for play results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished play session: how far the player got and the
// score they ended with.
type Result struct {
	ID         int64
	Level      int    // Level reached when the session ended
	Tier       string // Tier name of that level
	Score      int
	HintsUsed  int
	Expression string // Last expression the player had typed, for flavor in listings
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			tier TEXT NOT NULL,
			score INTEGER NOT NULL,
			hints_used INTEGER NOT NULL DEFAULT 0,
			expression TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_score ON results(score DESC);
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

// SaveResult records a finished session. Returns the ID of the
// inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (level, tier, score, hints_used, expression) VALUES (?, ?, ?, ?, ?)",
		r.Level, r.Tier, r.Score, r.HintsUsed, r.Expression,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopResults retrieves the best N sessions, ordered by score then
// level, both descending.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, tier, score, hints_used, expression, created_at
		 FROM results
		 ORDER BY score DESC, level DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Level, &r.Tier, &r.Score, &r.HintsUsed, &r.Expression, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseCreatedAt(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// HighScore returns the best score on record, or 0 if none exists.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// BestLevel returns the deepest level reached, or 0 if none exists.
func (s *Store) BestLevel() (int, error) {
	var level sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(level) FROM results").Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best level: %w", err)
	}
	if !level.Valid {
		return 0, nil
	}
	return int(level.Int64), nil
}

// ClearResults deletes all recorded sessions.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning datetimes as either
// time.Time or string.
func parseCreatedAt(v any) time.Time {
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
