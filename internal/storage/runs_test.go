package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	require.NoError(t, db.MigrateUp())
	again, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, version, again)
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRunRepository(openTestDB(t))

	part2 := int64(12)
	id, err := repo.Create(Run{
		Puzzle:     PuzzleRPS,
		InputPath:  "input",
		InputHash:  Fingerprint([]byte("A Y\nB X\nC Z\n")),
		Part1:      15,
		Part2:      &part2,
		DurationUs: 42,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	run, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, PuzzleRPS, run.Puzzle)
	assert.Equal(t, int64(15), run.Part1)
	require.NotNil(t, run.Part2)
	assert.Equal(t, int64(12), *run.Part2)
	assert.Nil(t, run.WindowSize)
	assert.Equal(t, 42*time.Microsecond, run.Duration())
	assert.WithinDuration(t, time.Now(), run.CreatedAt, time.Minute)
}

func TestGetMissing(t *testing.T) {
	repo := NewRunRepository(openTestDB(t))

	run, err := repo.Get("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, run)

	last, err := repo.GetLast("")
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestListNewestFirstAndFilter(t *testing.T) {
	repo := NewRunRepository(openTestDB(t))
	base := time.Date(2022, 12, 6, 5, 0, 0, 0, time.UTC)
	window := 14

	for i, puzzle := range []string{PuzzleRPS, PuzzleMarker, PuzzleMarker} {
		_, err := repo.Create(Run{
			Puzzle:     puzzle,
			InputPath:  "input",
			InputHash:  "abc",
			Part1:      int64(i),
			WindowSize: &window,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	all, err := repo.List("", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(2), all[0].Part1)
	assert.Equal(t, int64(0), all[2].Part1)

	markers, err := repo.List(PuzzleMarker, 10)
	require.NoError(t, err)
	require.Len(t, markers, 2)
	require.NotNil(t, markers[0].WindowSize)
	assert.Equal(t, 14, *markers[0].WindowSize)
	assert.Nil(t, markers[0].Part2)

	last, err := repo.GetLast(PuzzleRPS)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, int64(0), last.Part1)

	limited, err := repo.List("", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestByInputAndDelete(t *testing.T) {
	repo := NewRunRepository(openTestDB(t))

	a, err := repo.Create(Run{Puzzle: PuzzleMarker, InputHash: Fingerprint([]byte("abcd"))})
	require.NoError(t, err)
	_, err = repo.Create(Run{Puzzle: PuzzleMarker, InputHash: Fingerprint([]byte("efgh"))})
	require.NoError(t, err)

	runs, err := repo.ByInput(Fingerprint([]byte("abcd")))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, a, runs[0].RunID)

	require.NoError(t, repo.Delete(a))
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFingerprintStable(t *testing.T) {
	assert.Equal(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abc")))
	assert.NotEqual(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abd")))
}
