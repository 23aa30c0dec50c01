package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"
)

// HTTPClientConfig bundles the HTTP client and circuit breaker settings.
type HTTPClientConfig struct {
	Client *http.Client

	// BreakerMaxFailures is the number of consecutive transport or 5xx failures
	// that open the circuit. Zero disables the breaker.
	BreakerMaxFailures uint32
}

var (
	errServerError  = errors.New("server error")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

func newBreaker(name string, maxFailures uint32) *gobreaker.CircuitBreaker {
	if maxFailures == 0 {
		return nil
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A caller giving up is not a provider failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
}

// doRequest executes a single HTTP request through the circuit breaker.
// Only transport errors and 5xx responses count as breaker failures; other
// statuses are returned to the caller, which decides how to read them.
func doRequest(ctx context.Context, cfg HTTPClientConfig, cb *gobreaker.CircuitBreaker, req *http.Request) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}

	req = req.WithContext(ctx)

	do := func() (interface{}, error) {
		resp, err := cfg.Client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
		}
		return resp, nil
	}

	if cb == nil {
		result, err := do()
		if err != nil {
			return nil, err
		}
		return result.(*http.Response), nil
	}

	result, err := cb.Execute(do)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}
