package capitals_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/i474232898/capitals-weather/internal/capitals"
	"github.com/i474232898/capitals-weather/internal/capitals/mock"
)

const testKey = "test-key"

var (
	madison    = capitals.ReconciledCapital{City: "Madison", State: "Wisconsin", Lat: 43.07, Lng: -89.4}
	montgomery = capitals.ReconciledCapital{City: "Montgomery", State: "Alabama", Lat: 32.38, Lng: -86.3}
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	records := []capitals.ReconciledCapital{madison, montgomery}

	cases := []struct {
		name       string
		madison    capitals.Reading
		montgomery capitals.Reading
		labels     []string
		values     []float64
		average    *float64
	}{
		{
			name:       "all succeed",
			madison:    capitals.Celsius(10.0),
			montgomery: capitals.Celsius(20.0),
			labels:     []string{"Madison, Wisconsin", "Montgomery, Alabama"},
			values:     []float64{10.0, 20.0},
			average:    ptr(15.0),
		},
		{
			name:       "second fails",
			madison:    capitals.Celsius(10.0),
			montgomery: capitals.Unavailable(),
			labels:     []string{"Madison, Wisconsin"},
			values:     []float64{10.0},
			average:    ptr(10.0),
		},
		{
			name:       "first fails and second still fetched",
			madison:    capitals.Unavailable(),
			montgomery: capitals.Celsius(-3.5),
			labels:     []string{"Montgomery, Alabama"},
			values:     []float64{-3.5},
			average:    ptr(-3.5),
		},
		{
			name:       "all fail",
			madison:    capitals.Unavailable(),
			montgomery: capitals.Unavailable(),
			labels:     []string{},
			values:     []float64{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mock.NewMockTemperatureFetcher(ctrl)

			gomock.InOrder(
				fetcher.EXPECT().Fetch(ctx, 43.07, -89.4, testKey).Return(tc.madison),
				fetcher.EXPECT().Fetch(ctx, 32.38, -86.3, testKey).Return(tc.montgomery),
			)

			res := capitals.Analyze(ctx, records, fetcher, testKey, 1)

			assert.Equal(t, tc.labels, res.Labels)
			assert.Equal(t, tc.values, res.Values)
			assert.Equal(t, len(res.Labels), len(res.Values))
			if tc.average == nil {
				assert.Nil(t, res.Average)
				assert.True(t, res.Empty())
				return
			}
			assert.NotNil(t, res.Average)
			assert.InDelta(t, *tc.average, *res.Average, 1e-9)
		})
	}
}

func TestAnalyzeNoRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockTemperatureFetcher(ctrl)

	res := capitals.Analyze(context.Background(), nil, fetcher, testKey, 1)

	assert.Empty(t, res.Labels)
	assert.Empty(t, res.Values)
	assert.Nil(t, res.Average)
}

func TestAnalyzeConcurrentKeepsInputOrder(t *testing.T) {
	records := make([]capitals.ReconciledCapital, 0, 20)
	for i := 0; i < 20; i++ {
		records = append(records, capitals.ReconciledCapital{
			City:  string(rune('A' + i)),
			State: "State",
			Lat:   float64(i),
		})
	}

	var inFlight, maxInFlight int32
	fetcher := capitals.FetcherFunc(func(ctx context.Context, lat, lon float64, credential string) capitals.Reading {
		n := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			m := atomic.LoadInt32(&maxInFlight)
			if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
				break
			}
		}

		// Later records finish first.
		time.Sleep(time.Duration(20-int(lat)) * time.Millisecond)
		if int(lat)%5 == 0 {
			return capitals.Unavailable()
		}
		return capitals.Celsius(lat)
	})

	res := capitals.Analyze(context.Background(), records, fetcher, testKey, 4)

	wantLabels := []string{}
	wantValues := []float64{}
	var sum float64
	for i, r := range records {
		if i%5 == 0 {
			continue
		}
		wantLabels = append(wantLabels, r.Label())
		wantValues = append(wantValues, float64(i))
		sum += float64(i)
	}

	assert.Equal(t, wantLabels, res.Labels)
	assert.Equal(t, wantValues, res.Values)
	assert.InDelta(t, sum/float64(len(wantValues)), *res.Average, 1e-9)
	assert.True(t, atomic.LoadInt32(&maxInFlight) <= 4)
}

func TestAggregate(t *testing.T) {
	res := capitals.Aggregate([]capitals.TemperatureSample{
		{Label: "A, X", Celsius: ptr(1)},
		{Label: "B, Y"},
		{Label: "C, Z", Celsius: ptr(2)},
	})

	assert.Equal(t, []string{"A, X", "C, Z"}, res.Labels)
	assert.Equal(t, []float64{1, 2}, res.Values)
	assert.InDelta(t, 1.5, *res.Average, 1e-9)
}

func ptr(v float64) *float64 {
	return &v
}
