// Package storage provides SQLite-based persistence for the run log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// RunRecord summarizes one finished world.
type RunRecord struct {
	ID        int64
	Seed      uint32
	Source    string // "play", "ssh" or "sim"
	Player    string // SSH user, empty for local runs
	Revealed  int
	Grown     int
	Corrupted int
	Tiles     int
	Regions   int
	Duration  time.Duration
	CreatedAt time.Time
}

// RunSummary contains aggregated statistics over the run log.
type RunSummary struct {
	Runs         int
	BestRevealed int
	AvgRevealed  float64
	TotalGrown   int64
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			source TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			revealed INTEGER NOT NULL DEFAULT 0,
			grown INTEGER NOT NULL DEFAULT 0,
			corrupted INTEGER NOT NULL DEFAULT 0,
			tiles INTEGER NOT NULL DEFAULT 0,
			regions INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(revealed DESC);
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

// SaveRun records a finished run and returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (seed, source, player, revealed, grown, corrupted, tiles, regions, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(r.Seed), r.Source, r.Player, r.Revealed, r.Grown, r.Corrupted, r.Tiles, r.Regions,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, seed, source, player, revealed, grown, corrupted, tiles, regions, duration_ms, created_at`

// TopRuns retrieves the N runs that revealed the most cells.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY revealed DESC, id ASC LIMIT ?`,
		limit,
	)
}

// RunsForSeed retrieves every run played on the given seed, newest first.
func (s *Store) RunsForSeed(seed uint32) ([]RunRecord, error) {
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE seed = ? ORDER BY id DESC`,
		int64(seed),
	)
}

// BestRun returns the run that revealed the most cells, or nil if the log
// is empty.
func (s *Store) BestRun() (*RunRecord, error) {
	runs, err := s.TopRuns(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// ClearRuns deletes the whole run log.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Summary aggregates the whole run log.
func (s *Store) Summary() (*RunSummary, error) {
	sum := &RunSummary{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(revealed), 0), COALESCE(AVG(revealed), 0), COALESCE(SUM(grown), 0)
		 FROM runs`,
	).Scan(&sum.Runs, &sum.BestRevealed, &sum.AvgRevealed, &sum.TotalGrown)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run summary: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTime(lastPlayed)
	}

	return sum, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var seed, durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &seed, &r.Source, &r.Player, &r.Revealed, &r.Grown, &r.Corrupted,
			&r.Tiles, &r.Regions, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Seed = uint32(seed)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetime values.
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
