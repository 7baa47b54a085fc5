// Package storage provides SQLite-based persistence for generation run
// statistics. Mazes themselves are never stored; a run is reproduced from
// its seed and settings.
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

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// Run is one recorded generation.
type Run struct {
	ID         int64
	Seed       int64
	Columns    int
	Rows       int
	Preset     string
	Source     string // "cli", "tui" or "ssh"
	Placed     int
	ExtraWalls int
	Passages   int
	PathLength int
	Isolated   int
	DeadEnds   int
	CreatedAt  time.Time
}

// NewRun extracts the recorded statistics from a generation result.
func NewRun(res maze.Result, preset, source string) Run {
	return Run{
		Seed:       res.Seed,
		Columns:    res.Columns,
		Rows:       res.Rows,
		Preset:     preset,
		Source:     source,
		Placed:     res.Placed,
		ExtraWalls: res.ExtraWalls,
		Passages:   res.Passages,
		PathLength: res.PathLength(),
		Isolated:   res.Stats.Isolated,
		DeadEnds:   res.Stats.DeadEnds,
	}
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
			grid_cols INTEGER NOT NULL,
			grid_rows INTEGER NOT NULL,
			preset TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			placed INTEGER NOT NULL DEFAULT 0,
			extra_walls INTEGER NOT NULL DEFAULT 0,
			passages INTEGER NOT NULL DEFAULT 0,
			path_len INTEGER NOT NULL DEFAULT 0,
			isolated INTEGER NOT NULL DEFAULT 0,
			dead_ends INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
		CREATE INDEX IF NOT EXISTS idx_runs_preset ON runs(preset);
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

// SaveRun records a run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (seed, grid_cols, grid_rows, preset, source, placed, extra_walls, passages, path_len, isolated, dead_ends)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Columns, r.Rows, r.Preset, r.Source,
		r.Placed, r.ExtraWalls, r.Passages, r.PathLength, r.Isolated, r.DeadEnds,
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

const runColumns = `id, seed, grid_cols, grid_rows, preset, source, placed, extra_walls,
	passages, path_len, isolated, dead_ends, created_at`

// RecentRuns returns the newest runs first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunsByPreset returns the newest runs generated under preset.
func (s *Store) RunsByPreset(preset string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE preset = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunsBySeed returns every run generated from seed, newest first.
func (s *Store) RunsBySeed(seed int64) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE seed = ?
		 ORDER BY created_at DESC, id DESC`,
		seed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID returns a single run, or nil if it does not exist.
func (s *Store) RunByID(id int64) (*Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
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

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Seed, &r.Columns, &r.Rows, &r.Preset, &r.Source,
			&r.Placed, &r.ExtraWalls, &r.Passages, &r.PathLength,
			&r.Isolated, &r.DeadEnds, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string DATETIME values.
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

// PresetStats contains aggregated statistics for one preset.
type PresetStats struct {
	Preset      string
	Runs        int
	AvgPath     float64
	AvgPlaced   float64
	MaxIsolated int
	LastRun     time.Time
}

// GetPresetStats retrieves aggregated statistics for a specific preset.
// A preset that was never run yields zero counts.
func (s *Store) GetPresetStats(preset string) (*PresetStats, error) {
	stats := &PresetStats{Preset: preset}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(path_len), 0), COALESCE(AVG(placed), 0), COALESCE(MAX(isolated), 0)
		 FROM runs WHERE preset = ?`,
		preset,
	).Scan(&stats.Runs, &stats.AvgPath, &stats.AvgPlaced, &stats.MaxIsolated)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE preset = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		preset,
	).Scan(&lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}

// GetAllPresetStats retrieves statistics for every preset that has runs.
func (s *Store) GetAllPresetStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset, COUNT(*), AVG(path_len), AVG(placed), MAX(isolated), MAX(created_at)
		 FROM runs
		 GROUP BY preset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all preset stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		var ps PresetStats
		var lastRun any
		if err := rows.Scan(&ps.Preset, &ps.Runs, &ps.AvgPath, &ps.AvgPlaced, &ps.MaxIsolated, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastRun = parseTime(lastRun)
		stats[ps.Preset] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
