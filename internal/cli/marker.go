package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/aoc2022/internal/input"
	"github.com/SeamusWaldron/aoc2022/internal/storage"
	"github.com/SeamusWaldron/aoc2022/pkg/marker"
)

var markerWindow int

var markerCmd = &cobra.Command{
	Use:   "marker [input]",
	Short: "Find start-of-packet and start-of-message markers",
	Long: `Find the first position in a datastream where the last N characters are
all different. The first line of the input is the datastream.

Problem 1 uses a window of 4 (start-of-packet), Problem 2 a window of 14
(start-of-message). A result of 0 means the datastream holds no marker.

Examples:
  aoc marker
  aoc marker signal.txt
  aoc marker --window 8 signal.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMarker,
}

func init() {
	rootCmd.AddCommand(markerCmd)
	markerCmd.Flags().IntVarP(&markerWindow, "window", "w", 0, "Detect a single marker with this window size")
}

// loadDatastream reads the input and returns its first line. An input with
// no line at all is an empty datastream.
func loadDatastream(args []string) (string, []byte, string, error) {
	path, data, err := loadInput(args)
	if err != nil {
		return "", nil, "", err
	}
	stream := input.FirstLine(data)
	if stream == "" {
		log.Warn().Str("path", path).Msg("input holds no datastream")
	}
	return path, data, stream, nil
}

func runMarker(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("window") && markerWindow < 1 {
		return marker.ErrInvalidWindowSize
	}

	path, data, stream, err := loadDatastream(args)
	if err != nil {
		return err
	}

	if markerWindow > 0 {
		return runSingleMarker(cmd, path, data, stream)
	}

	start := time.Now()
	answers, err := marker.Solve(stream)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	elapsed := time.Since(start)

	if answers.StartOfPacket == marker.NotFound || answers.StartOfMessage == marker.NotFound {
		log.Warn().Str("path", path).Msg("datastream ended before a marker was found")
	}
	printAnswers(cmd.OutOrStdout(), answers.StartOfPacket, answers.StartOfMessage)

	recordRun(storage.Run{
		Puzzle:    storage.PuzzleMarker,
		InputPath: path,
		Part1:     int64(answers.StartOfPacket),
		Part2:     int64Ptr(answers.StartOfMessage),
	}, data, elapsed)
	return nil
}

func runSingleMarker(cmd *cobra.Command, path string, data []byte, stream string) error {
	start := time.Now()
	pos, err := marker.Detect(stream, markerWindow)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if pos == marker.NotFound {
		log.Warn().Int("window", markerWindow).Msg("datastream ended before a marker was found")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		labelStyle.Render(fmt.Sprintf("Marker (window %d):", markerWindow)),
		answerStyle.Render(fmt.Sprint(pos)))

	window := markerWindow
	recordRun(storage.Run{
		Puzzle:     storage.PuzzleMarker,
		InputPath:  path,
		Part1:      int64(pos),
		WindowSize: &window,
	}, data, elapsed)
	return nil
}
