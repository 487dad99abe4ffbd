package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/aoc2022/internal/storage"
)

var (
	historyPuzzle string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded solver runs",
	Long: `List recorded runs, newest first.

Examples:
  aoc history
  aoc history --puzzle marker --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.PersistentFlags().StringVar(&historyPuzzle, "puzzle", "", "Only show runs of this puzzle (rps, marker)")
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs")
}

// listRuns loads runs matching the history flags.
func listRuns() ([]storage.Run, error) {
	if historyPuzzle != "" && !lo.Contains([]string{storage.PuzzleRPS, storage.PuzzleMarker}, historyPuzzle) {
		return nil, fmt.Errorf("unknown puzzle: %s (use %s or %s)", historyPuzzle, storage.PuzzleRPS, storage.PuzzleMarker)
	}

	db, err := openDB()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return storage.NewRunRepository(db).List(historyPuzzle, historyLimit)
}

func runHistory(cmd *cobra.Command, args []string) error {
	runs, err := listRuns()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Solver history"))
	fmt.Fprintf(out, "%s %s\n\n", labelStyle.Render("Database:"), cfg.DBPath)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded. Solve a puzzle first with: aoc rps or aoc marker")
		return nil
	}

	writeRunTable(out, runs)

	// Same input solved more than once should give the same answers.
	byInput := lo.GroupBy(runs, func(r storage.Run) string { return r.Puzzle + "/" + r.InputHash + "/" + windowLabel(r) })
	keys := lo.Keys(byInput)
	slices.Sort(keys)
	for _, key := range keys {
		group := byInput[key]
		answers := lo.Uniq(lo.Map(group, func(r storage.Run, _ int) string { return answerLabel(r) }))
		if len(answers) > 1 {
			fmt.Fprintf(out, "\n%s runs over input %s disagree: %s\n",
				duplicateStyle.Render("!"), key, strings.Join(answers, ", "))
		}
	}
	return nil
}

func writeRunTable(w io.Writer, runs []storage.Run) {
	fmt.Fprintf(w, "%-8s  %-7s  %-6s  %-16s  %-19s  %10s  %s\n",
		"RUN", "PUZZLE", "WINDOW", "INPUT", "WHEN", "ELAPSED", "ANSWERS")
	for _, r := range runs {
		fmt.Fprintf(w, "%-8s  %-7s  %-6s  %-16s  %-19s  %10s  %s\n",
			r.RunID[:min(8, len(r.RunID))],
			r.Puzzle,
			windowLabel(r),
			r.InputHash,
			r.CreatedAt.Local().Format(time.DateTime),
			r.Duration().Round(time.Microsecond),
			answerStyle.Render(answerLabel(r)))
	}
}

func windowLabel(r storage.Run) string {
	if r.WindowSize == nil {
		return "-"
	}
	return fmt.Sprint(*r.WindowSize)
}

func answerLabel(r storage.Run) string {
	if r.Part2 == nil {
		return fmt.Sprint(r.Part1)
	}
	return fmt.Sprintf("%d / %d", r.Part1, *r.Part2)
}
