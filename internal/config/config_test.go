package config

import (
	"testing"
	"time"

	"github.com/tj/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CITIES_FILE", "CAPITALS_FILE", "HTTP_TIMEOUT", "FETCH_TIMEOUT", "FETCH_WORKERS", "RELOAD_INTERVAL", "BREAKER_MAX_FAILURES", "PORT", "OPENWEATHER_BASE_URL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	assert.Nil(t, err)

	assert.Equal(t, "worldcities.csv", cfg.CitiesFile)
	assert.Equal(t, "state_capitals.csv", cfg.CapitalsFile)
	assert.Equal(t, "", cfg.OpenWeatherBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 8*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 5*time.Minute, cfg.ReloadInterval)
	assert.Equal(t, 1, cfg.FetchWorkers)
	assert.Equal(t, uint32(5), cfg.BreakerMaxFailures)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FETCH_WORKERS", "4")
	t.Setenv("RELOAD_INTERVAL", "0s")
	t.Setenv("BREAKER_MAX_FAILURES", "0")

	cfg, err := Load()
	assert.Nil(t, err)
	assert.Equal(t, 4, cfg.FetchWorkers)
	assert.Equal(t, time.Duration(0), cfg.ReloadInterval)
	assert.Equal(t, uint32(0), cfg.BreakerMaxFailures)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"FETCH_TIMEOUT":        "soon",
		"FETCH_WORKERS":        "0",
		"BREAKER_MAX_FAILURES": "-1",
		"HTTP_TIMEOUT":         "10",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := Load()
			assert.NotNil(t, err)
		})
	}
}
