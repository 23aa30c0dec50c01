package capitals

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Enrich fetches a temperature for every record and returns one sample per record,
// in input order. With workers <= 1 records are fetched one at a time; otherwise at
// most workers fetches run concurrently and results are placed by original index.
func Enrich(ctx context.Context, records []ReconciledCapital, fetcher TemperatureFetcher, credential string, workers int) []TemperatureSample {
	samples := make([]TemperatureSample, len(records))

	fetchOne := func(i int) {
		r := records[i]
		samples[i] = TemperatureSample{Label: r.Label()}

		reading := fetcher.Fetch(ctx, r.Lat, r.Lng, credential)
		if reading.Available {
			v := reading.Celsius
			samples[i].Celsius = &v
		}
	}

	if workers <= 1 || len(records) <= 1 {
		for i := range records {
			fetchOne(i)
		}
		return samples
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range records {
		i := i
		g.Go(func() error {
			fetchOne(i)
			return nil
		})
	}
	_ = g.Wait()

	return samples
}

// Aggregate drops unavailable samples and averages the rest.
func Aggregate(samples []TemperatureSample) AnalysisResult {
	res := AnalysisResult{
		Labels: make([]string, 0, len(samples)),
		Values: make([]float64, 0, len(samples)),
	}

	var sum float64
	for _, s := range samples {
		if s.Celsius == nil {
			continue
		}
		res.Labels = append(res.Labels, s.Label)
		res.Values = append(res.Values, *s.Celsius)
		sum += *s.Celsius
	}

	if len(res.Values) > 0 {
		avg := sum / float64(len(res.Values))
		res.Average = &avg
	}

	return res
}

// Analyze drives records through fetcher and aggregates the successful readings.
// It never fails: total fetch failure yields empty Labels/Values and a nil Average.
func Analyze(ctx context.Context, records []ReconciledCapital, fetcher TemperatureFetcher, credential string, workers int) AnalysisResult {
	return Aggregate(Enrich(ctx, records, fetcher, credential, workers))
}
