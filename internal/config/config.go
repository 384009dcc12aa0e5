package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port           string
	LogLevel       string
	BackendURL     string // empty selects local simulation (demo) mode
	SimulationSeed int64  // 0 selects a time-based seed
	ResultTTL      time.Duration
}

// NewConfig loads configuration from the environment, with a best-effort .env
// file on top.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		BackendURL: os.Getenv("BACKEND_URL"),
	}

	seed := getEnv("SIMULATION_SEED", "0")
	parsed, err := strconv.ParseInt(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SIMULATION_SEED %q: %w", seed, err)
	}
	cfg.SimulationSeed = parsed

	ttl := getEnv("RESULT_TTL", "1h")
	cfg.ResultTTL, err = time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid RESULT_TTL %q: %w", ttl, err)
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}

	return cfg, nil
}

// DemoMode reports whether responses are simulated in process.
func (c *Config) DemoMode() bool {
	return c.BackendURL == ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
