package cli

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/aoc2022/internal/storage"
	"github.com/SeamusWaldron/aoc2022/pkg/rps"
)

var rpsCmd = &cobra.Command{
	Use:   "rps [input]",
	Short: "Score a rock paper scissors strategy guide",
	Long: `Score a strategy guide of "<opponent> <response>" lines.

The opponent column is A (rock), B (paper) or C (scissors). Problem 1 reads
the second column as the move to play (X rock, Y paper, Z scissors); Problem 2
reads it as the outcome to reach (X lose, Y draw, Z win).

Examples:
  aoc rps                 # reads ./input
  aoc rps guide.txt
  cat guide.txt | aoc rps -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRPS,
}

func init() {
	rootCmd.AddCommand(rpsCmd)
}

func runRPS(cmd *cobra.Command, args []string) error {
	path, data, err := loadInput(args)
	if err != nil {
		return err
	}

	start := time.Now()
	answers, err := rps.Solve(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	elapsed := time.Since(start)

	printAnswers(cmd.OutOrStdout(), answers.ByMoves, answers.ByOutcome)

	recordRun(storage.Run{
		Puzzle:    storage.PuzzleRPS,
		InputPath: path,
		Part1:     int64(answers.ByMoves),
		Part2:     int64Ptr(answers.ByOutcome),
	}, data, elapsed)
	return nil
}
