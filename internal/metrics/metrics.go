package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "moviescraper",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	GatewayRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "moviescraper",
		Name:      "gateway_requests_total",
		Help:      "Total search gateway requests by kind (primary, cast) and result status.",
	}, []string{"kind", "status"})

	GatewayRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "moviescraper",
		Name:      "gateway_request_duration_seconds",
		Help:      "Search gateway request duration in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	}, []string{"kind"})

	ExtractionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "moviescraper",
		Name:      "extractions_total",
		Help:      "Raw results processed by outcome (extracted, discarded).",
	}, []string{"outcome"})

	CastSourceTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "moviescraper",
		Name:      "cast_source_total",
		Help:      "Where each extracted movie's cast came from (fullcredits, basic, none).",
	}, []string{"source"})

	StoredMovies = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "moviescraper",
		Name:      "stored_movies",
		Help:      "Number of movies held by the in-memory store.",
	})
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		GatewayRequestsTotal,
		GatewayRequestDuration,
		ExtractionsTotal,
		CastSourceTotal,
		StoredMovies,
	)
}
