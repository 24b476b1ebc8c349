// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func histogramCount(t *testing.T, h interface{ Write(*dto.Metric) error }) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "metrics_test_table"))

	RecordDBQuery("SELECT", "metrics_test_table", 5*time.Millisecond, nil)
	RecordDBQuery("SELECT", "metrics_test_table", 7*time.Millisecond, errors.New("connection refused"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "metrics_test_table"))
	if after-before != 1 {
		t.Errorf("DBQueryErrors delta = %v, want 1", after-before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/metrics-test", "200"))
	RecordAPIRequest("GET", "/metrics-test", "200", 10*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/metrics-test", "200"))
	if after-before != 1 {
		t.Errorf("APIRequestsTotal delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name     string
		partial  bool
		err      error
		result   string
		observed uint64
	}{
		{"complete", false, nil, "ok", 1},
		{"degraded", true, nil, "partial", 1},
		{"failed", false, errors.New("boom"), "error", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendationsServed.WithLabelValues(tt.result))
			samplesBefore := histogramCount(t, RecommendationDuration)
			RecordRecommendation(100*time.Millisecond, tt.partial, tt.err)
			after := testutil.ToFloat64(RecommendationsServed.WithLabelValues(tt.result))
			if after-before != 1 {
				t.Errorf("RecommendationsServed{%s} delta = %v, want 1", tt.result, after-before)
			}
			if got := histogramCount(t, RecommendationDuration) - samplesBefore; got != tt.observed {
				t.Errorf("RecommendationDuration samples delta = %d, want %d", got, tt.observed)
			}
		})
	}
}

func TestRecordClassifierPrediction(t *testing.T) {
	beforeOK := testutil.ToFloat64(ClassifierPredictions.WithLabelValues("ok"))
	beforeLabel := testutil.ToFloat64(ClassifierLabelsActive.WithLabelValues("Backpacker"))
	beforeErr := testutil.ToFloat64(ClassifierPredictions.WithLabelValues("error"))

	RecordClassifierPrediction([]string{"Backpacker", "Adventurer"}, nil)
	RecordClassifierPrediction(nil, errors.New("bad vector"))

	if d := testutil.ToFloat64(ClassifierPredictions.WithLabelValues("ok")) - beforeOK; d != 1 {
		t.Errorf("ok predictions delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(ClassifierLabelsActive.WithLabelValues("Backpacker")) - beforeLabel; d != 1 {
		t.Errorf("Backpacker label delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(ClassifierPredictions.WithLabelValues("error")) - beforeErr; d != 1 {
		t.Errorf("error predictions delta = %v, want 1", d)
	}
}

func TestRecordProviderAndCache(t *testing.T) {
	beforeErr := testutil.ToFloat64(ProviderRequests.WithLabelValues("metrics_test", "error"))
	RecordProviderRequest("metrics_test", time.Second, errors.New("timeout"))
	if d := testutil.ToFloat64(ProviderRequests.WithLabelValues("metrics_test", "error")) - beforeErr; d != 1 {
		t.Errorf("provider error delta = %v, want 1", d)
	}

	beforeHit := testutil.ToFloat64(CacheHits.WithLabelValues("metrics_test"))
	beforeMiss := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics_test"))
	RecordCacheLookup("metrics_test", true)
	RecordCacheLookup("metrics_test", false)
	RecordCacheLookup("metrics_test", false)
	if d := testutil.ToFloat64(CacheHits.WithLabelValues("metrics_test")) - beforeHit; d != 1 {
		t.Errorf("cache hit delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics_test")) - beforeMiss; d != 2 {
		t.Errorf("cache miss delta = %v, want 2", d)
	}
}

func TestRecordEvents(t *testing.T) {
	before := testutil.ToFloat64(EventsPublished.WithLabelValues("metrics.test", "success"))
	RecordEventPublished("metrics.test", nil)
	RecordEventConsumed("metrics.test", errors.New("decode"))
	if d := testutil.ToFloat64(EventsPublished.WithLabelValues("metrics.test", "success")) - before; d != 1 {
		t.Errorf("published delta = %v, want 1", d)
	}
	if got := testutil.ToFloat64(EventsConsumed.WithLabelValues("metrics.test", "error")); got < 1 {
		t.Errorf("consumed error counter = %v, want >= 1", got)
	}
}

func TestConcurrentRecording(t *testing.T) {
	const workers = 20
	before := testutil.ToFloat64(RecommendationFallbacks.WithLabelValues("metrics_concurrent"))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordFallback("metrics_concurrent")
		}()
	}
	wg.Wait()

	if d := testutil.ToFloat64(RecommendationFallbacks.WithLabelValues("metrics_concurrent")) - before; d != workers {
		t.Errorf("fallback delta = %v, want %d", d, workers)
	}
}
