package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Quote metrics
	QuoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hylo_quote_requests_total",
			Help: "Total number of quote requests",
		},
		[]string{"operation", "status"},
	)

	QuoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hylo_quote_duration_seconds",
			Help:    "Quote computation duration in seconds, including state hydration",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"operation"},
	)

	SwapParamRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hylo_swap_param_rejections_total",
			Help: "Swap requests rejected by parameter validation",
		},
		[]string{"reason"},
	)

	// Account snapshot metrics
	AccountDecodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hylo_account_decode_failures_total",
			Help: "Accounts present in the snapshot that failed to decode",
		},
		[]string{"layout"},
	)

	AccountFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hylo_account_fetch_duration_seconds",
		Help:    "RPC getMultipleAccounts duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hylo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hylo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
