package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the web server settings.
type Config struct {
	Port string
	// Seed for the dealers. Zero deals from a clock-seeded source.
	Seed      int64
	Advertise bool
	GinMode   string
	// Most browser sessions kept in memory. Zero uses the server default.
	MaxSessions int
}

// Load reads a .env file if present, then the environment.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit .env file names. Missing files are skipped.
// Variables already set in the environment win over file values.
func LoadFiles(filenames ...string) (*Config, error) {
	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("error loading %s: %w", f, err)
			}
		}
	}

	cfg := &Config{
		Port:    getEnvWithDefault("PORT", "8080"),
		GinMode: getEnvWithDefault("GIN_MODE", "debug"),
	}

	if v := os.Getenv("SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("ADVERTISE"); v != "" {
		advertise, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ADVERTISE %q: %w", v, err)
		}
		cfg.Advertise = advertise
	}
	if v := os.Getenv("MAX_SESSIONS"); v != "" {
		maxSessions, err := strconv.Atoi(v)
		if err != nil || maxSessions < 0 {
			return nil, fmt.Errorf("invalid MAX_SESSIONS %q", v)
		}
		cfg.MaxSessions = maxSessions
	}
	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
