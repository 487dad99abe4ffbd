package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/aoc2022/internal/storage"
)

// run executes the root command in a fresh working directory state and
// returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	markerWindow = 0
	markerCmd.Flags().Lookup("window").Changed = false
	historyPuzzle = ""
	historyLimit = 20
	exportFormat = "txt"
	exportOutput = ""
	noHistory = false
	cfgFile = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("NO_COLOR", "1")
	return filepath.Join(dir, "history.db")
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
}

func TestRPSCommand(t *testing.T) {
	db := setup(t)
	writeFile(t, "input", "A Y\nB X\nC Z\n")

	out, err := run(t, "rps", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Problem 1: 15")
	assert.Contains(t, out, "Problem 2: 12")
}

func TestRPSCommandBadInput(t *testing.T) {
	db := setup(t)
	writeFile(t, "guide.txt", "A Y\nQ X\n")

	_, err := run(t, "rps", "guide.txt", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestMarkerCommand(t *testing.T) {
	db := setup(t)
	writeFile(t, "input", "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n")

	out, err := run(t, "marker", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Problem 1: 7")
	assert.Contains(t, out, "Problem 2: 19")
}

func TestMarkerCommandWindow(t *testing.T) {
	db := setup(t)
	writeFile(t, "signal.txt", "nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg\n")

	out, err := run(t, "marker", "signal.txt", "--window", "14", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Marker (window 14): 29")

	_, err = run(t, "marker", "signal.txt", "--window", "0", "--db", db)
	assert.Error(t, err)
}

func TestMarkerCommandEmptyInput(t *testing.T) {
	db := setup(t)
	writeFile(t, "input", "\n\n")

	out, err := run(t, "marker", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Problem 1: 0")
	assert.Contains(t, out, "Problem 2: 0")
}

func TestHistoryRecordsRuns(t *testing.T) {
	db := setup(t)
	writeFile(t, "input", "A Y\nB X\nC Z\n")
	writeFile(t, "signal.txt", "bvwbjplbgvbhsrlpgdmjqwftvncz\n")

	_, err := run(t, "rps", "--db", db)
	require.NoError(t, err)
	_, err = run(t, "marker", "signal.txt", "--db", db)
	require.NoError(t, err)
	_, err = run(t, "rps", "--db", db, "--no-history")
	require.NoError(t, err)

	out, err := run(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "15 / 12")
	assert.Contains(t, out, "5 / 23")

	out, err = run(t, "history", "export", "--format", "json", "--puzzle", "rps", "--db", db)
	require.NoError(t, err)
	var runs []storage.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, int64(15), runs[0].Part1)
	assert.Equal(t, storage.Fingerprint([]byte("A Y\nB X\nC Z\n")), runs[0].InputHash)
}

func TestHistoryUnknownPuzzle(t *testing.T) {
	db := setup(t)

	_, err := run(t, "history", "--puzzle", "day9", "--db", db)
	assert.Error(t, err)
}

func TestFormatRuns(t *testing.T) {
	part2 := int64(23)
	runs := []storage.Run{{RunID: "abc", Puzzle: storage.PuzzleMarker, InputHash: "ff", Part1: 5, Part2: &part2}}

	txt, err := formatRuns(runs, "txt")
	require.NoError(t, err)
	assert.Equal(t, "abc marker ff 5 / 23", txt)

	yml, err := formatRuns(runs, "yaml")
	require.NoError(t, err)
	assert.Contains(t, yml, "part2: 23")

	empty, err := formatRuns(nil, "json")
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	_, err = formatRuns(runs, "xml")
	assert.Error(t, err)
}
