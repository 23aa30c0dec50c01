package capitals

import "context"

//go:generate mockgen -source=provider.go -destination=mock/mock.go -package=mock TemperatureFetcher

// Reading is the tagged outcome of a single temperature lookup.
// Every failure mode collapses into Available == false.
type Reading struct {
	Celsius   float64
	Available bool
}

// Celsius wraps a successfully fetched temperature.
func Celsius(v float64) Reading {
	return Reading{Celsius: v, Available: true}
}

// Unavailable is the single outcome for any failed lookup.
func Unavailable() Reading {
	return Reading{}
}

// TemperatureFetcher abstracts the current-conditions weather provider.
// Implementations must never panic or block past ctx; failures return Unavailable.
type TemperatureFetcher interface {
	Fetch(ctx context.Context, lat, lon float64, credential string) Reading
}

// FetcherFunc adapts a plain function to TemperatureFetcher.
type FetcherFunc func(ctx context.Context, lat, lon float64, credential string) Reading

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, lat, lon float64, credential string) Reading {
	return f(ctx, lat, lon, credential)
}
