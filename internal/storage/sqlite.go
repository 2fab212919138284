// Package storage provides SQLite-based persistence for completed puzzle
// solutions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solution persistence.
type Store struct {
	db *sql.DB
}

// SolutionEntry records one solved round: which strategy generated the
// board, the seed that reproduces it, and the best move count achieved.
type SolutionEntry struct {
	ID        int64
	Strategy  string
	Seed      int64
	Round     int
	Moves     int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS solutions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			strategy TEXT NOT NULL,
			seed INTEGER NOT NULL,
			round INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solutions_strategy ON solutions(strategy);
		CREATE INDEX IF NOT EXISTS idx_solutions_best ON solutions(strategy, moves ASC);
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

// SaveSolution records a solved round. Returns the ID of the inserted
// record.
func (s *Store) SaveSolution(strategy string, seed int64, round, moves int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solutions (strategy, seed, round, moves) VALUES (?, ?, ?, ?)",
		strategy, seed, round, moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solution: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolutions retrieves the N shortest solutions for the given
// strategy, ordered by move count ascending.
func (s *Store) BestSolutions(strategy string, limit int) ([]SolutionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, strategy, seed, round, moves, created_at
		 FROM solutions
		 WHERE strategy = ?
		 ORDER BY moves ASC, created_at ASC
		 LIMIT ?`,
		strategy, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	var entries []SolutionEntry
	for rows.Next() {
		var e SolutionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Strategy, &e.Seed, &e.Round, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestMoves returns the lowest recorded move count for the given
// strategy. Returns 0 if no solutions exist.
func (s *Store) BestMoves(strategy string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM solutions WHERE strategy = ?",
		strategy,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// ClearSolutions deletes all solutions for the given strategy.
func (s *Store) ClearSolutions(strategy string) error {
	_, err := s.db.Exec("DELETE FROM solutions WHERE strategy = ?", strategy)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solutions: %w", err)
	}
	return nil
}

// Stats contains aggregated solve statistics for one strategy.
type Stats struct {
	Strategy   string
	Solved     int
	BestMoves  int
	AvgMoves   float64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics for a strategy.
func (s *Store) GetStats(strategy string) (*Stats, error) {
	stats := &Stats{Strategy: strategy}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0)
		 FROM solutions WHERE strategy = ?`,
		strategy,
	).Scan(&stats.Solved, &stats.BestMoves, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM solutions WHERE strategy = ? ORDER BY created_at DESC LIMIT 1`,
		strategy,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// parseCreatedAt handles the driver returning either time.Time or a
// string for DATETIME columns.
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
