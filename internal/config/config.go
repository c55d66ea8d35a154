// Package config loads simulation settings from an optional .env file and
// HANABI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	engine "github.com/edwin-thomson/Hanabi/engine"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything a batch run needs.
type Config struct {
	Games    int
	Seed     uint64
	Workers  int
	Strategy string
	Seats    int
	HandSize int // 0 picks the usual size for the seat count
	LogLevel logrus.Level
}

// Default is a thousand convention games at a four-seat table, one worker
// per CPU.
func Default() Config {
	return Config{
		Games:    1000,
		Seed:     1,
		Workers:  runtime.NumCPU(),
		Strategy: "convention",
		Seats:    4,
		LogLevel: logrus.InfoLevel,
	}
}

// Load reads path with godotenv (a missing file is fine), then applies any
// HANABI_* variables on top of the defaults. Variables already set in the
// environment win over the file.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, starting from Default.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	var err error
	if cfg.Games, err = intVar(getenv, "HANABI_GAMES", cfg.Games); err != nil {
		return Config{}, err
	}
	if s := getenv("HANABI_SEED"); s != "" {
		if cfg.Seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return Config{}, fmt.Errorf("HANABI_SEED: %w", err)
		}
	}
	if cfg.Workers, err = intVar(getenv, "HANABI_WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if s := strings.TrimSpace(getenv("HANABI_STRATEGY")); s != "" {
		cfg.Strategy = s
	}
	if cfg.Seats, err = intVar(getenv, "HANABI_SEATS", cfg.Seats); err != nil {
		return Config{}, err
	}
	if cfg.HandSize, err = intVar(getenv, "HANABI_HAND_SIZE", cfg.HandSize); err != nil {
		return Config{}, err
	}
	if s := getenv("HANABI_LOG_LEVEL"); s != "" {
		if cfg.LogLevel, err = logrus.ParseLevel(s); err != nil {
			return Config{}, fmt.Errorf("HANABI_LOG_LEVEL: %w", err)
		}
	}
	return cfg, cfg.Validate()
}

func intVar(getenv func(string) string, key string, def int) (int, error) {
	s := strings.TrimSpace(getenv(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// Validate checks the batch settings and the table they describe.
func (c Config) Validate() error {
	if c.Games < 0 {
		return fmt.Errorf("games must not be negative, got %d", c.Games)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Strategy == "" {
		return errors.New("no strategy named")
	}
	if c.Seats < 2 || c.Seats > engine.MaxSeats {
		return fmt.Errorf("seats must be between 2 and %d, got %d", engine.MaxSeats, c.Seats)
	}
	if c.HandSize < 0 || c.HandSize > engine.MaxHandSize {
		return fmt.Errorf("hand size must be between 1 and %d, got %d", engine.MaxHandSize, c.HandSize)
	}
	return c.Rules().Validate()
}

// Rules returns the table rules: the standard token counts, with five cards
// per hand below four seats unless HandSize says otherwise.
func (c Config) Rules() engine.Rules {
	r := engine.DefaultRules()
	r.NumSeats = uint8(c.Seats)
	switch {
	case c.HandSize > 0:
		r.HandSize = uint8(c.HandSize)
	case c.Seats <= 3:
		r.HandSize = 5
	}
	return r
}
