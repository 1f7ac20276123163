package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrInvalidConfig indicates an environment value that cannot be used.
var ErrInvalidConfig = errors.New("server: invalid configuration")

// Defaults applied by LoadConfig when a variable is unset.
const (
	DefaultAddr     = ":8080"
	DefaultTimeout  = 10 * time.Second
	DefaultMaxCells = 20_000
	DefaultRadius   = 8

	// noiseRadius and noiseSeed shape the built-in sample used when no
	// sample file is configured.
	noiseRadius = 6
	noiseSeed   = 1
)

// Config holds the server settings.
type Config struct {
	Addr          string
	SamplePath    string // empty: a built-in noise sample
	Timeout       time.Duration
	MaxCells      int
	RotationsOnly bool
}

// DefaultConfig returns the settings used when the environment is empty.
func DefaultConfig() Config {
	return Config{
		Addr:     DefaultAddr,
		Timeout:  DefaultTimeout,
		MaxCells: DefaultMaxCells,
	}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if v := getenv("HEXFORGE_ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.SamplePath = getenv("HEXFORGE_SAMPLE")

	if v := getenv("HEXFORGE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("HEXFORGE_TIMEOUT=%q: %w", v, ErrInvalidConfig)
		}
		cfg.Timeout = d
	}
	if v := getenv("HEXFORGE_MAX_CELLS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("HEXFORGE_MAX_CELLS=%q: %w", v, ErrInvalidConfig)
		}
		cfg.MaxCells = n
	}
	if v := getenv("HEXFORGE_ROTATIONS_ONLY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("HEXFORGE_ROTATIONS_ONLY=%q: %w", v, ErrInvalidConfig)
		}
		cfg.RotationsOnly = b
	}
	return cfg, nil
}
