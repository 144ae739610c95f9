// Package config loads the handful of environment-driven tunables a host
// embedding BEXL may want to set, following the godotenv + slog bring-up
// style used elsewhere in this stack.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment-derived settings an Evaluator accepts via
// eval.WithConfig.
type Config struct {
	// RandomSeed, if set, seeds random()'s generator for reproducible
	// evaluation. Nil means the generator keeps its default seed.
	RandomSeed *int64

	// MaxCollectionLen soft-caps the length of a list()/record() literal
	// a host-supplied expression may construct. Zero means unbounded.
	MaxCollectionLen int

	// LogLevel is the slog level new evaluators log dispatch trace at.
	LogLevel slog.Level
}

// Load reads path as a .env file (a missing file is not an error,
// mirroring godotenv.Load's own contract) and then reads
// BEXL_RANDOM_SEED, BEXL_MAX_COLLECTION_LEN, and BEXL_LOG_LEVEL from the
// resulting environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{LogLevel: slog.LevelInfo}

	if raw := os.Getenv("BEXL_RANDOM_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		cfg.RandomSeed = &seed
	}

	if raw := os.Getenv("BEXL_MAX_COLLECTION_LEN"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		cfg.MaxCollectionLen = n
	}

	if raw := os.Getenv("BEXL_LOG_LEVEL"); raw != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
