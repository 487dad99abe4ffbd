package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/aoc2022/pkg/marker"
)

func newTestWatch(t *testing.T, stream string, size int) *watchModel {
	t.Helper()
	sc, err := marker.NewScanner(stream, size)
	require.NoError(t, err)
	return newWatchModel(sc, 1)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWatchStepKeys(t *testing.T) {
	m := newTestWatch(t, "bvwbjplbgvbhsrlpgdmjqwftvncz", marker.StartOfPacket)

	for i := 0; i < 5; i++ {
		m.Update(key("n"))
	}
	assert.True(t, m.paused)
	pos, found := m.scanner.Found()
	assert.True(t, found)
	assert.Equal(t, 5, pos)
	assert.Contains(t, m.View(), "Marker found after 5 characters")

	m.Update(key("r"))
	assert.Equal(t, 0, m.scanner.Position())
}

func TestWatchIgnoresStaleTicks(t *testing.T) {
	m := newTestWatch(t, "abcdef", 3)
	m.Init()
	stale := watchTickMsg{seq: m.tickSeq}

	m.Update(key("p")) // pause
	m.Update(key("p")) // resume with a new timer
	m.Update(stale)
	assert.Equal(t, 0, m.scanner.Position())

	m.Update(watchTickMsg{seq: m.tickSeq})
	assert.Equal(t, 1, m.scanner.Position())
}

func TestWatchSpeedBounds(t *testing.T) {
	m := newTestWatch(t, "abcdef", 3)
	for i := 0; i < 20; i++ {
		m.Update(key("+"))
	}
	assert.Equal(t, float64(maxSpeed), m.speed)
	for i := 0; i < 20; i++ {
		m.Update(key("-"))
	}
	assert.Equal(t, minSpeed, m.speed)
}

func TestWatchQuit(t *testing.T) {
	m := newTestWatch(t, "abcdef", 3)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}
