package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/capitals-weather/internal/capitals"
	"github.com/i474232898/capitals-weather/internal/logger"
)

// DefaultOpenWeatherURL is the current-conditions endpoint.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

const breakerOpenTimeout = 1 * time.Minute

// OpenWeatherFetcher implements capitals.TemperatureFetcher for OpenWeatherMap.
type OpenWeatherFetcher struct {
	name    string
	baseURL string
	timeout time.Duration
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherFetcher creates a fetcher. An empty baseURL uses DefaultOpenWeatherURL;
// timeout bounds every single fetch (0 leaves it to the client).
func NewOpenWeatherFetcher(cfg HTTPClientConfig, baseURL string, timeout time.Duration) *OpenWeatherFetcher {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	return &OpenWeatherFetcher{
		name:    "openweathermap",
		baseURL: baseURL,
		timeout: timeout,
		httpCfg: cfg,
		circuit: newBreaker("openweather", cfg.BreakerMaxFailures),
	}
}

// Fetch returns the current temperature in Celsius at (lat, lon).
// Transport errors, timeouts, a non-200 "cod" and malformed bodies all yield Unavailable.
func (p *OpenWeatherFetcher) Fetch(ctx context.Context, lat, lon float64, credential string) capitals.Reading {
	temp, err := p.fetch(ctx, lat, lon, credential)
	if err != nil {
		logger.WithFields(logger.Fields{
			"provider": p.name,
			"lat":      lat,
			"lon":      lon,
		}).Debugf("temperature fetch failed: %v", err)
		return capitals.Unavailable()
	}
	return capitals.Celsius(temp)
}

func (p *OpenWeatherFetcher) fetch(ctx context.Context, lat, lon float64, credential string) (float64, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("appid", credential)
	values.Set("units", "metric")

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), nil)
	if err != nil {
		return 0, err
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, req)
	if err != nil {
		return 0, redact(err, credential)
	}
	defer resp.Body.Close()

	var payload struct {
		Cod  statusCode `json:"cod"`
		Main struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	if payload.Cod != http.StatusOK {
		return 0, fmt.Errorf("provider status %g: %s", float64(payload.Cod), payload.Message)
	}
	if payload.Main.Temp == nil {
		return 0, fmt.Errorf("response has no main.temp")
	}

	return *payload.Main.Temp, nil
}

// statusCode accepts OpenWeather's "cod", which is a number on success and
// sometimes a quoted number on errors. 200 and 200.0 compare equal.
type statusCode float64

func (c *statusCode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid cod %s: %w", b, err)
	}
	*c = statusCode(n)
	return nil
}

// redact strips the credential, raw or query-escaped, from transport errors,
// which embed the request URL.
func redact(err error, credential string) error {
	if credential == "" {
		return err
	}
	msg := err.Error()
	redacted := strings.ReplaceAll(msg, url.QueryEscape(credential), "REDACTED")
	redacted = strings.ReplaceAll(redacted, credential, "REDACTED")
	if redacted == msg {
		return err
	}
	return fmt.Errorf("%s", redacted)
}
