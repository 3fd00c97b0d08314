package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	AuthCallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuthCallbacks,
			Help: HelpTextAuthCallbacks,
		},
		[]string{LabelPlatform, LabelOutcome},
	)

	TokenExchangeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokenExchangeFails,
			Help: HelpTextTokenExchangeFails,
		},
		[]string{LabelPlatform},
	)

	SessionsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsIssued,
			Help: HelpTextSessionsIssued,
		},
	)

	PlatformsLinked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlatformsLinked,
			Help: HelpTextPlatformsLinked,
		},
		[]string{LabelPlatform},
	)

	PlatformsUnlinked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlatformsUnlinked,
			Help: HelpTextPlatformsUnlinked,
		},
		[]string{LabelPlatform},
	)

	RobloxLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRobloxLookups,
			Help: HelpTextRobloxLookups,
		},
		[]string{LabelResult},
	)
)
