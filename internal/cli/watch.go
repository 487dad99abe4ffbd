package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/aoc2022/pkg/marker"
)

var watchCmd = &cobra.Command{
	Use:   "watch [input]",
	Short: "Step through a marker scan interactively",
	Long: `Watch the sliding window move over the datastream until the marker is found.

Keys:
  space, n   step one character (pauses playback)
  p          play / pause
  + / -      faster / slower
  r          restart
  q          quit

Examples:
  aoc marker watch
  aoc marker watch --window 14 --speed 4`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

var (
	watchWindow int
	watchSpeed  float64
)

func init() {
	markerCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVarP(&watchWindow, "window", "w", marker.StartOfPacket, "Window size")
	watchCmd.Flags().Float64VarP(&watchSpeed, "speed", "s", 1.0, "Characters per second")
}

func runWatch(cmd *cobra.Command, args []string) error {
	_, _, stream, err := loadDatastream(args)
	if err != nil {
		return err
	}

	scanner, err := marker.NewScanner(stream, watchWindow)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newWatchModel(scanner, watchSpeed), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("watch error: %w", err)
	}

	if m, ok := final.(*watchModel); ok {
		if pos, found := m.scanner.Found(); found {
			fmt.Fprintf(cmd.OutOrStdout(), "Marker (window %d): %d\n", watchWindow, pos)
		}
	}
	return nil
}

const (
	minSpeed = 0.25
	maxSpeed = 64
	// context characters shown either side of the window
	contextWidth = 24
)

type watchModel struct {
	scanner  *marker.Scanner
	speed    float64
	paused   bool
	quitting bool
	// ticks from superseded timers are dropped
	tickSeq int
}

type watchTickMsg struct{ seq int }

func newWatchModel(scanner *marker.Scanner, speed float64) *watchModel {
	return &watchModel{
		scanner: scanner,
		speed:   min(max(speed, minSpeed), maxSpeed),
	}
}

func (m *watchModel) Init() tea.Cmd {
	return m.tick()
}

func (m *watchModel) tick() tea.Cmd {
	if m.paused || m.scanner.Done() {
		return nil
	}
	m.tickSeq++
	seq := m.tickSeq
	delay := time.Duration(float64(time.Second) / m.speed)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return watchTickMsg{seq: seq}
	})
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			m.paused = true
			m.scanner.Step()

		case "p":
			m.paused = !m.paused
			return m, m.tick()

		case "r":
			m.scanner.Reset()
			return m, m.tick()

		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)

		case "-":
			m.speed = max(m.speed/2, minSpeed)
		}

	case watchTickMsg:
		if !m.paused && msg.seq == m.tickSeq {
			m.scanner.Step()
			return m, m.tick()
		}
	}

	return m, nil
}

func (m *watchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	s := m.scanner

	b.WriteString(titleStyle.Render(fmt.Sprintf("Marker scan (window %d)", s.WindowSize())))
	b.WriteString("\n\n")

	b.WriteString(m.renderStream())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %d / %d\n", labelStyle.Render("Position:"), s.Position(), s.Len())
	fmt.Fprintf(&b, "%s %d / %d\n", labelStyle.Render("Distinct:"), s.Distinct(), s.WindowSize())
	if pushed, evicted, ok := s.Last(); ok {
		fmt.Fprintf(&b, "%s %q in, %q out\n", labelStyle.Render("Last step:"), pushed, evicted)
	} else if s.Position() > 0 {
		fmt.Fprintf(&b, "%s %q in\n", labelStyle.Render("Last step:"), pushed)
	}
	b.WriteString("\n")

	switch pos, found := s.Found(); {
	case found:
		b.WriteString(foundStyle.Render(fmt.Sprintf("Marker found after %d characters", pos)))
	case s.Done():
		b.WriteString(duplicateStyle.Render("No marker in datastream"))
	case m.paused:
		b.WriteString(labelStyle.Render("Paused"))
	default:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Playing at %.2gx", m.speed)))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("space/n: step  p: play/pause  +/-: speed  r: restart  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderStream draws the window with repeated characters highlighted, plus
// some of the datastream either side of it.
func (m *watchModel) renderStream() string {
	s := m.scanner
	win := s.Window()
	end := s.Position()
	start := end - len(win)

	stream := []rune(s.Text())
	var b strings.Builder

	from := max(0, start-contextWidth)
	if from > 0 {
		b.WriteString(helpStyle.Render("…"))
	}
	b.WriteString(helpStyle.Render(string(stream[from:start])))

	for _, r := range win {
		style := windowStyle
		if s.Count(r) > 1 {
			style = duplicateStyle
		}
		b.WriteString(style.Render(string(r)))
	}

	to := min(len(stream), end+contextWidth)
	b.WriteString(helpStyle.Render(string(stream[end:to])))
	if to < len(stream) {
		b.WriteString(helpStyle.Render("…"))
	}
	return b.String()
}
