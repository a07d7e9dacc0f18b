package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label names.
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelSkill  = "skill"
	LabelSource = "source"
	LabelType   = "type"
)

// HTTPLatencyBuckets cover the expected range of a companion API request.
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// HTTP metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business metrics.
var (
	ProjectionsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "projections_computed_total",
			Help: "Total number of calculator projections computed",
		},
		[]string{LabelSkill},
	)

	ProfileLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_lookups_total",
			Help: "Total number of player profile lookups",
		},
		[]string{LabelSource}, // "cache" or "upstream"
	)

	MarketFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_fetches_total",
			Help: "Total number of market price fetches",
		},
		[]string{LabelSource},
	)

	UpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_errors_total",
			Help: "Total number of game API request failures",
		},
		[]string{LabelType},
	)

	SearchesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "searches_recorded_total",
			Help: "Total number of searches written to history",
		},
	)
)
