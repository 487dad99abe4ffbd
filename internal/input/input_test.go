package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, "day6.txt", Resolve("day6.txt", "puzzles"))
	assert.Equal(t, filepath.Join("puzzles", DefaultName), Resolve("", "puzzles"))
	assert.Equal(t, DefaultName, Resolve("", ""))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte("A Y\nB X\n"), 0644))

	data, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "A Y\nB X\n", string(data))
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "mjqjpqm", FirstLine([]byte("\n  mjqjpqm \r\nsecond\n")))
	assert.Equal(t, "", FirstLine([]byte("\n\n")))
	assert.Equal(t, "abc", FirstLine([]byte("abc")))
}
