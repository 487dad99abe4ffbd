package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/aoc2022/internal/storage"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs",
	Long: `Export recorded runs in text, JSON or YAML format.

Examples:
  aoc history export
  aoc history export --format json --puzzle rps
  aoc history export --format yaml -o runs.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	historyCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// formatRuns renders runs in the given export format.
func formatRuns(runs []storage.Run, format string) (string, error) {
	if runs == nil {
		runs = []storage.Run{}
	}

	switch strings.ToLower(format) {
	case "txt":
		var b strings.Builder
		for _, r := range runs {
			fmt.Fprintf(&b, "%s %s %s %s\n", r.RunID, r.Puzzle, r.InputHash, answerLabel(r))
		}
		return strings.TrimSuffix(b.String(), "\n"), nil

	case "json":
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	case "yaml", "yml":
		data, err := yaml.Marshal(runs)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt, json or yaml)", format)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	runs, err := listRuns()
	if err != nil {
		return err
	}

	output, err := formatRuns(runs, exportFormat)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d runs to %s\n", len(runs), exportOutput)
	return nil
}
