package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/aoc2022/internal/input"
	"github.com/SeamusWaldron/aoc2022/internal/storage"
)

// loadInput reads the puzzle input named by the first argument, falling back
// to the configured input directory.
func loadInput(args []string) (string, []byte, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	path = input.Resolve(path, cfg.InputDir)

	data, err := input.Read(path)
	if err != nil {
		return path, nil, err
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("loaded input")
	return path, data, nil
}

// openDB opens the history database and applies migrations.
func openDB() (*storage.DB, error) {
	if cfg == nil || cfg.DBPath == "" {
		return nil, errors.New("no history database configured")
	}
	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return db, nil
}

// recordRun stores a run in the history database. History is best effort: a
// failure is logged and the solver answers still stand.
func recordRun(run storage.Run, data []byte, elapsed time.Duration) {
	if !cfg.History {
		return
	}

	run.InputHash = storage.Fingerprint(data)
	run.DurationUs = elapsed.Microseconds()

	db, err := openDB()
	if err != nil {
		log.Warn().Err(err).Msg("run not recorded")
		return
	}
	defer db.Close()

	id, err := storage.NewRunRepository(db).Create(run)
	if err != nil {
		log.Warn().Err(err).Msg("run not recorded")
		return
	}
	log.Info().Str("run_id", id).Str("puzzle", run.Puzzle).Dur("elapsed", elapsed).Msg("run recorded")
}

func int64Ptr(v int) *int64 {
	i := int64(v)
	return &i
}
