package capitals

import (
	"context"
	"sync/atomic"

	"github.com/i474232898/capitals-weather/internal/logger"
)

// Service answers capital temperature queries against the current Dataset.
type Service struct {
	dataset atomic.Pointer[Dataset]
	fetcher TemperatureFetcher
	workers int
}

// NewService creates a new Service. workers <= 1 keeps fetches sequential.
func NewService(dataset *Dataset, fetcher TemperatureFetcher, workers int) *Service {
	s := &Service{
		fetcher: fetcher,
		workers: workers,
	}
	if dataset == nil {
		dataset = NewDataset(nil, nil)
	}
	s.dataset.Store(dataset)
	return s
}

// Dataset returns the dataset currently in use.
func (s *Service) Dataset() *Dataset {
	return s.dataset.Load()
}

// Reload rebuilds the dataset from fresh tables and swaps it in atomically.
// In-flight requests keep the dataset they started with.
func (s *Service) Reload(cities []CityRecord, capitals []CapitalRecord) *Dataset {
	ds := NewDataset(cities, capitals)
	s.dataset.Store(ds)

	st := ds.Stats()
	logger.WithFields(logger.Fields{
		"cities":     st.Cities,
		"capitals":   st.Capitals,
		"reconciled": st.Reconciled,
	}).Info("capitals dataset reloaded")

	return ds
}

// Capitals returns the reconciled capitals whose state starts with letter.
func (s *Service) Capitals(letter string) []ReconciledCapital {
	return s.dataset.Load().ByLetter(letter)
}

// AnalyzeCapitals filters the capitals by letter, fetches each one's current
// temperature with credential and aggregates the successful readings.
func (s *Service) AnalyzeCapitals(ctx context.Context, letter, credential string) AnalysisResult {
	records := s.Capitals(letter)
	if len(records) == 0 {
		logger.WithFields(logger.Fields{"letter": letter}).Debug("no capitals match letter")
		return Aggregate(nil)
	}

	samples := Enrich(ctx, records, s.fetcher, credential, s.workers)
	for _, smp := range samples {
		if smp.Celsius == nil {
			logger.WithFields(logger.Fields{"capital": smp.Label}).Debug("temperature unavailable")
		}
	}

	res := Aggregate(samples)
	logger.WithFields(logger.Fields{
		"letter":    letter,
		"requested": len(records),
		"available": len(res.Values),
	}).Info("capitals analyzed")

	return res
}
