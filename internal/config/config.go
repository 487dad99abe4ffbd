// Package config resolves solver settings from flags, environment, an
// optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/aoc2022/internal/storage"
)

// EnvPrefix is prepended to every environment variable, e.g. AOC_DB.
const EnvPrefix = "AOC"

// Setting keys. Flags registered under the same names are bound automatically.
const (
	KeyDB       = "db"
	KeyLogLevel = "log-level"
	KeyHistory  = "history"
	KeyInputDir = "input-dir"
	KeyVerbose  = "verbose"
)

// Config holds resolved settings.
type Config struct {
	DBPath   string
	LogLevel zerolog.Level
	History  bool
	InputDir string
}

// Load resolves settings. Flags take precedence over environment variables,
// which take precedence over the config file. A missing .env is not an error;
// an explicitly named config file that cannot be read is.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyHistory, true)
	v.SetDefault(KeyInputDir, ".")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString(KeyLogLevel)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", v.GetString(KeyLogLevel), err)
	}
	if v.GetBool(KeyVerbose) {
		level = zerolog.DebugLevel
	}

	dbPath := v.GetString(KeyDB)
	if dbPath == "" {
		dbPath, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		DBPath:   dbPath,
		LogLevel: level,
		History:  v.GetBool(KeyHistory),
		InputDir: v.GetString(KeyInputDir),
	}, nil
}
