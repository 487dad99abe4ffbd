// Package cli implements the command-line interface for aoc.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/aoc2022/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile   string
	noHistory bool

	// cfg is resolved before any subcommand runs.
	cfg *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2022 solvers",
	Long: `aoc solves the day 2 (rock paper scissors strategy guide) and day 6
(tuning trouble datastream markers) puzzles.

Each solver reads its puzzle input, prints "Problem 1" and "Problem 2"
answers, and records the run in a local history database.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (YAML)")
	flags.String(config.KeyDB, "", "History database path (default: ~/.aoc2022/history.db)")
	flags.String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error)")
	flags.String(config.KeyInputDir, ".", "Directory holding the default 'input' file")
	flags.BoolP(config.KeyVerbose, "v", false, "Enable verbose output")
	flags.BoolVar(&noHistory, "no-history", false, "Do not record this run")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cmd.Root().PersistentFlags(), cfgFile)
	if err != nil {
		return err
	}
	if noHistory {
		c.History = false
	}

	setupLogging(c.LogLevel)
	cfg = c
	return nil
}

func setupLogging(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
