// Package metrics provides Prometheus metrics for the clinical trials API.
// HTTP metrics:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//
// Dataset metrics describe the snapshot currently served and search metrics
// the size of the answers. Everything is registered with the Prometheus
// default registry during package initialization.
package metrics

import (
	"github.com/giygas/clinicaltrials-api/interfaces"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (client IPs currently tracked)",
		},
	)

	DatasetTrials = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_trials",
			Help: "Trials in the served snapshot, by data quality category",
		},
		[]string{"category"},
	)

	DatasetLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Dataset load attempts by result",
		},
		[]string{"result"},
	)

	DatasetLastLoadTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_last_load_timestamp_seconds",
			Help: "Unix time of the last successful dataset load",
		},
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_results",
			Help:    "Number of titles returned per search",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
		},
		[]string{"filter"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(DatasetTrials)
	prometheus.MustRegister(DatasetLoadsTotal)
	prometheus.MustRegister(DatasetLastLoadTimestamp)
	prometheus.MustRegister(SearchResults)
}

// RecordDatasetReport publishes the data quality report of a new snapshot
func RecordDatasetReport(report *interfaces.DataQualityReport) {
	if report == nil {
		return
	}
	DatasetTrials.WithLabelValues("total").Set(float64(report.TotalTrials))
	DatasetTrials.WithLabelValues("without_conditions").Set(float64(report.TrialsWithoutConditions))
	DatasetTrials.WithLabelValues("without_title").Set(float64(report.TrialsWithoutTitle))
	DatasetTrials.WithLabelValues("without_intervention").Set(float64(report.TrialsWithoutIntervention))
	DatasetTrials.WithLabelValues("canonical_nsclc").Set(float64(report.CanonicalNSCLCTrials))
}

// RecordSearch observes the result size of one search, labeled by which filters were set
func RecordSearch(diseaseSet, therapySet bool, results int) {
	filter := "none"
	switch {
	case diseaseSet && therapySet:
		filter = "disease_therapy"
	case diseaseSet:
		filter = "disease"
	case therapySet:
		filter = "therapy"
	}
	SearchResults.WithLabelValues(filter).Observe(float64(results))
}
