package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ff_journal"

// Sponsorship metrics
var (
	SponsorshipRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sponsorship_requests_total",
			Help:      "Sponsorship requests by outcome",
		},
		[]string{"result"},
	)

	SponsoredGas = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sponsored_gas_total",
		Help:      "Gas budget granted to users, in MIST",
	})

	SponsorCoinCount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sponsor_coin_count",
		Help:      "Gas coins owned by the sponsor at the last request",
	})
)

// Indexer metrics
var (
	IndexerTicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "indexer_ticks_total",
		Help:      "Indexer ticks run",
	})

	IndexerEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indexer_events_total",
			Help:      "Events handled by the indexer by event kind and outcome",
		},
		[]string{"event_type", "result"},
	)

	IndexerPages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indexer_pages_total",
			Help:      "Event pages fetched by event kind and outcome",
		},
		[]string{"event_type", "result"},
	)
)

// HTTP metrics
var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "path"},
	)
)
