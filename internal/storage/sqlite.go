// Package storage provides SQLite-based persistence for level progress.
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

// ErrNoProgress is returned when a player has never completed a level.
var ErrNoProgress = errors.New("storage: no progress recorded")

// DefaultPlayer is the profile used by local play.
const DefaultPlayer = "local"

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// LevelProgress is the best result a player has achieved on a level.
type LevelProgress struct {
	Player      string
	LevelID     int
	BestStars   int
	BestSteps   int
	Completions int
	UpdatedAt   time.Time
}

// Attempt is a single finished or abandoned play of a level.
type Attempt struct {
	ID        int64
	Player    string
	LevelID   int
	Steps     int
	Stars     int // 0 when not solved
	Solved    bool
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
		CREATE TABLE IF NOT EXISTS level_progress (
			player TEXT NOT NULL,
			level_id INTEGER NOT NULL,
			best_stars INTEGER NOT NULL,
			best_steps INTEGER NOT NULL,
			completions INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player, level_id)
		);

		CREATE TABLE IF NOT EXISTS unlocks (
			player TEXT PRIMARY KEY,
			unlocked_level INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			level_id INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			stars INTEGER NOT NULL DEFAULT 0,
			solved INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_level ON attempts(player, level_id);
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

// CompleteLevel records a solved level. The best star count and the lowest
// step count are kept, and every level id up to unlock becomes playable.
// Callers pass the id that follows levelID in their level order.
func (s *Store) CompleteLevel(player string, levelID, unlock, stars, steps int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.Exec(
		`INSERT INTO level_progress (player, level_id, best_stars, best_steps)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(player, level_id) DO UPDATE SET
			best_stars = MAX(best_stars, excluded.best_stars),
			best_steps = MIN(best_steps, excluded.best_steps),
			completions = completions + 1,
			updated_at = CURRENT_TIMESTAMP`,
		player, levelID, stars, steps,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO unlocks (player, unlocked_level) VALUES (?, ?)
		 ON CONFLICT(player) DO UPDATE SET
			unlocked_level = MAX(unlocked_level, excluded.unlocked_level)`,
		player, unlock,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot unlock level: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return nil
}

// BestStars returns the best star count for a level.
// Returns ErrNoProgress if the level was never completed.
func (s *Store) BestStars(player string, levelID int) (int, error) {
	p, err := s.Progress(player, levelID)
	if err != nil {
		return 0, err
	}
	return p.BestStars, nil
}

// Progress returns the stored progress for a level.
// Returns ErrNoProgress if the level was never completed.
func (s *Store) Progress(player string, levelID int) (LevelProgress, error) {
	var p LevelProgress
	var updatedAt any
	err := s.db.QueryRow(
		`SELECT player, level_id, best_stars, best_steps, completions, updated_at
		 FROM level_progress
		 WHERE player = ? AND level_id = ?`,
		player, levelID,
	).Scan(&p.Player, &p.LevelID, &p.BestStars, &p.BestSteps, &p.Completions, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return LevelProgress{}, ErrNoProgress
	}
	if err != nil {
		return LevelProgress{}, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

// UnlockedLevel returns the highest unlocked level id. Level 1 is always unlocked.
func (s *Store) UnlockedLevel(player string) (int, error) {
	var level sql.NullInt64
	err := s.db.QueryRow(
		"SELECT unlocked_level FROM unlocks WHERE player = ?",
		player,
	).Scan(&level)
	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query unlocked level: %w", err)
	}
	return max(1, int(level.Int64)), nil
}

// IsUnlocked reports whether a level may be played.
func (s *Store) IsUnlocked(player string, levelID int) (bool, error) {
	unlocked, err := s.UnlockedLevel(player)
	if err != nil {
		return false, err
	}
	return levelID <= unlocked, nil
}

// RecordAttempt stores one play of a level.
// Returns the ID of the inserted record.
func (s *Store) RecordAttempt(a Attempt) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO attempts (player, level_id, steps, stars, solved) VALUES (?, ?, ?, ?, ?)",
		a.Player, a.LevelID, a.Steps, a.Stars, a.Solved,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Attempts retrieves the most recent attempts at a level, newest first.
func (s *Store) Attempts(player string, levelID, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, level_id, steps, stars, solved, created_at
		 FROM attempts
		 WHERE player = ? AND level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.Player, &a.LevelID, &a.Steps, &a.Stars, &a.Solved, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return attempts, nil
}

// AllProgress returns the player's progress keyed by level id.
func (s *Store) AllProgress(player string) (map[int]LevelProgress, error) {
	rows, err := s.db.Query(
		`SELECT player, level_id, best_stars, best_steps, completions, updated_at
		 FROM level_progress
		 WHERE player = ?`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[int]LevelProgress)
	for rows.Next() {
		var p LevelProgress
		var updatedAt any
		if err := rows.Scan(&p.Player, &p.LevelID, &p.BestStars, &p.BestSteps, &p.Completions, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan progress row: %w", err)
		}
		p.UpdatedAt = parseTime(updatedAt)
		progress[p.LevelID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return progress, nil
}

// TotalStars sums the best stars over all completed levels.
func (s *Store) TotalStars(player string) (int, error) {
	var total int
	err := s.db.QueryRow(
		"SELECT COALESCE(SUM(best_stars), 0) FROM level_progress WHERE player = ?",
		player,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot sum stars: %w", err)
	}
	return total, nil
}

// Reset deletes all progress, unlocks and attempts for the player.
func (s *Store) Reset(player string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, table := range []string{"level_progress", "unlocks", "attempts"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE player = ?", player); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
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
