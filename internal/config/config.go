package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/capitals-weather/internal/logger"
)

type AppConfig struct {
	// Source tables.
	CitiesFile   string
	CapitalsFile string

	// Weather provider.
	OpenWeatherBaseURL string
	HTTPTimeout        time.Duration // shared client timeout
	FetchTimeout       time.Duration // per-capital fetch bound
	FetchWorkers       int           // 1 = sequential
	BreakerMaxFailures uint32        // 0 = breaker disabled

	// ReloadInterval controls how often the source tables are checked for changes (0 = never).
	ReloadInterval time.Duration

	Port     string
	LogLevel string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info(fmt.Sprintf("No .env file found or error loading it: %v", err))
	}
	cfg := &AppConfig{}

	cfg.CitiesFile = getenvDefault("CITIES_FILE", "worldcities.csv")
	cfg.CapitalsFile = getenvDefault("CAPITALS_FILE", "state_capitals.csv")
	// Empty falls back to the fetcher's default endpoint.
	cfg.OpenWeatherBaseURL = os.Getenv("OPENWEATHER_BASE_URL")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = getenvDuration("FETCH_TIMEOUT", "8s"); err != nil {
		return nil, err
	}
	if cfg.ReloadInterval, err = getenvDuration("RELOAD_INTERVAL", "5m"); err != nil {
		return nil, err
	}

	if cfg.FetchWorkers, err = getenvInt("FETCH_WORKERS", 1); err != nil {
		return nil, err
	}
	if cfg.FetchWorkers < 1 {
		return nil, fmt.Errorf("invalid FETCH_WORKERS: must be at least 1, got %d", cfg.FetchWorkers)
	}

	maxFailures, err := getenvInt("BREAKER_MAX_FAILURES", 5)
	if err != nil {
		return nil, err
	}
	if maxFailures < 0 {
		return nil, fmt.Errorf("invalid BREAKER_MAX_FAILURES: must not be negative, got %d", maxFailures)
	}
	cfg.BreakerMaxFailures = uint32(maxFailures)

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
