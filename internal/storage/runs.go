package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash"
	"github.com/google/uuid"
)

// Puzzle names stored with each run.
const (
	PuzzleRPS    = "rps"
	PuzzleMarker = "marker"
)

// Run is one solver invocation in the history database.
type Run struct {
	RunID      string    `json:"run_id" yaml:"run_id"`
	Puzzle     string    `json:"puzzle" yaml:"puzzle"`
	InputPath  string    `json:"input_path" yaml:"input_path"`
	InputHash  string    `json:"input_hash" yaml:"input_hash"`
	Part1      int64     `json:"part1" yaml:"part1"`
	Part2      *int64    `json:"part2,omitempty" yaml:"part2,omitempty"`
	WindowSize *int      `json:"window_size,omitempty" yaml:"window_size,omitempty"`
	DurationUs int64     `json:"duration_us" yaml:"duration_us"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Duration returns how long the solver ran.
func (r Run) Duration() time.Duration {
	return time.Duration(r.DurationUs) * time.Microsecond
}

// Fingerprint returns a short stable hash identifying an input file's contents.
func Fingerprint(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create stores a run and returns its generated ID. CreatedAt defaults to now.
func (r *RunRepository) Create(run Run) (string, error) {
	id := uuid.New().String()
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, puzzle, input_path, input_hash, part1, part2, window_size, duration_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, run.Puzzle, run.InputPath, run.InputHash, run.Part1, run.Part2, run.WindowSize,
		run.DurationUs, createdAt.UTC().Format(timeLayout))

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000Z"

const runColumns = `run_id, puzzle, input_path, input_hash, part1, part2, window_size, duration_us, created_at`

// Get retrieves a run by ID. It returns nil if the run does not exist.
func (r *RunRepository) Get(runID string) (*Run, error) {
	row := r.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// GetLast retrieves the most recent run, optionally limited to one puzzle.
// It returns nil if there are no runs.
func (r *RunRepository) GetLast(puzzle string) (*Run, error) {
	runs, err := r.List(puzzle, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// List returns up to limit runs, newest first. An empty puzzle matches all puzzles.
func (r *RunRepository) List(puzzle string, limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		WHERE ? = '' OR puzzle = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, puzzle, puzzle, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ByInput returns all runs over inputs with the given fingerprint, oldest first.
func (r *RunRepository) ByInput(inputHash string) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		WHERE input_hash = ?
		ORDER BY created_at, rowid
	`, inputHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get runs by input: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// Count returns the number of stored runs.
func (r *RunRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// Delete removes a run.
func (r *RunRepository) Delete(runID string) error {
	_, err := r.db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var part2, window sql.NullInt64
	var createdAt string
	err := s.Scan(&run.RunID, &run.Puzzle, &run.InputPath, &run.InputHash,
		&run.Part1, &part2, &window, &run.DurationUs, &createdAt)
	if err != nil {
		return nil, err
	}

	if part2.Valid {
		run.Part2 = &part2.Int64
	}
	if window.Valid {
		w := int(window.Int64)
		run.WindowSize = &w
	}
	run.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &run, nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}
