package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label values
const (
	ResultOK      = "ok"
	ResultNoop    = "noop"
	ResultError   = "error"
	ResultPanic   = "panic"
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics are registered on an injected registry so tests can build an isolated set.
type Metrics struct {
	TicksTotal          *prometheus.CounterVec
	TickDuration        prometheus.Histogram
	NewOrdersTotal      prometheus.Counter
	SeenOrders          prometheus.Gauge
	TokenRefreshesTotal *prometheus.CounterVec
	APIRequestsTotal    *prometheus.CounterVec
	APIRequestDuration  *prometheus.HistogramVec
	DispatchTotal       *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TicksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_poll_ticks_total",
				Help: "Total number of polling ticks by result",
			},
			[]string{"result"},
		),
		TickDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "order_poll_tick_duration_seconds",
				Help:    "Duration of a polling tick",
				Buckets: prometheus.DefBuckets,
			},
		),
		NewOrdersTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "order_new_orders_total",
				Help: "Total number of product orders detected as new",
			},
		),
		SeenOrders: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "order_seen_orders",
				Help: "Number of product order ids in the seen set",
			},
		),
		TokenRefreshesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commerce_token_refreshes_total",
				Help: "Total number of access token refreshes by result",
			},
			[]string{"result"},
		),
		APIRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commerce_api_requests_total",
				Help: "Total number of commerce API requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		APIRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "commerce_api_request_duration_seconds",
				Help:    "Duration of commerce API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		DispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_dispatch_total",
				Help: "Total number of notification sends by channel and result",
			},
			[]string{"channel", "result"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ops_http_requests_total",
				Help: "Total number of ops HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ops_http_request_duration_seconds",
				Help:    "Duration of ops HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	reg.MustRegister(
		m.TicksTotal,
		m.TickDuration,
		m.NewOrdersTotal,
		m.SeenOrders,
		m.TokenRefreshesTotal,
		m.APIRequestsTotal,
		m.APIRequestDuration,
		m.DispatchTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)
	return m
}

// NewNop returns metrics registered on a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
