package controllers

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics. prometheus collectors of the navigation api.
type Metrics struct {
	SearchQueryCount   *prometheus.CounterVec
	StationRunCount    *prometheus.CounterVec
	HttpDuration       *prometheus.HistogramVec
	DurationSummary    prometheus.Summary
	ResponseStatusCode *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SearchQueryCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navigatorx",
			Name:      "search_query_count",
			Help:      "The total number of search queries",
		}, []string{"strategy", "status"}),
		StationRunCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navigatorx",
			Name:      "station_optimization_count",
			Help:      "The total number of station placement runs",
		}, []string{"method"}),
		HttpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "navigatorx",
			Name:      "request_duration_seconds",
			Help:      "The duration of request",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"method", "path"}),
		DurationSummary: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace:  "navigatorx",
			Name:       "request_duration_summary_seconds",
			Help:       "The duration of request",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		ResponseStatusCode: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navigatorx",
			Name:      "response_status_code",
			Help:      "The status code of http response",
		}, []string{"status", "method", "path"}),
	}
	reg.MustRegister(m.SearchQueryCount, m.StationRunCount, m.HttpDuration, m.DurationSummary, m.ResponseStatusCode)
	return m
}
