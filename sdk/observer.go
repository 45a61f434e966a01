package sdk

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer provides hooks for monitoring SDK operations. Implement it
// to feed your metrics stack; methods must be fast and non-blocking.
// The SDK calls the hooks around every dispatched operation. Requests
// rejected by local validation never reach the observer.
type Observer interface {
	// OnRequestStart is called before an operation is dispatched.
	OnRequestStart(operation, resource string)

	// OnRequestEnd is called when an operation completes. err is the
	// classified error for Error outcomes and nil otherwise.
	OnRequestEnd(operation, resource string, duration time.Duration, err *Error)

	// OnCacheHit is called when a read finds its target.
	OnCacheHit(operation, resource string)

	// OnCacheMiss is called when a read comes back empty.
	OnCacheMiss(operation, resource string)

	// OnRetryAttempt is called before each retry of an eligible
	// operation.
	OnRetryAttempt(operation, resource string, attempt int, delay time.Duration, err *Error)
}

// NoopObserver ignores every event. It is the default.
type NoopObserver struct{}

func (NoopObserver) OnRequestStart(string, string)                              {}
func (NoopObserver) OnRequestEnd(string, string, time.Duration, *Error)         {}
func (NoopObserver) OnCacheHit(string, string)                                  {}
func (NoopObserver) OnCacheMiss(string, string)                                 {}
func (NoopObserver) OnRetryAttempt(string, string, int, time.Duration, *Error)  {}

// PrometheusObserver exports request counts, latencies, error kinds and
// hit/miss counters.
type PrometheusObserver struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	retries  *prometheus.CounterVec
}

// NewPrometheusObserver registers the SDK's metrics with reg and
// returns the observer. Pass prometheus.DefaultRegisterer to use the
// global registry.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	o := &PrometheusObserver{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roost_sdk_requests_total",
			Help: "Remote operations issued, by operation.",
		}, []string{"operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roost_sdk_errors_total",
			Help: "Error outcomes, by operation and error code.",
		}, []string{"operation", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roost_sdk_request_duration_seconds",
			Help:    "Operation latency from dispatch to outcome.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roost_sdk_hits_total",
			Help: "Read operations that found their target.",
		}, []string{"operation"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roost_sdk_misses_total",
			Help: "Read operations that came back empty.",
		}, []string{"operation"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roost_sdk_retries_total",
			Help: "Retry attempts, by operation.",
		}, []string{"operation"}),
	}
	reg.MustRegister(o.requests, o.errors, o.latency, o.hits, o.misses, o.retries)
	return o
}

func (o *PrometheusObserver) OnRequestStart(operation, resource string) {
	o.requests.WithLabelValues(operation).Inc()
}

func (o *PrometheusObserver) OnRequestEnd(operation, resource string, duration time.Duration, err *Error) {
	o.latency.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		o.errors.WithLabelValues(operation, string(err.ErrorCode())).Inc()
	}
}

func (o *PrometheusObserver) OnCacheHit(operation, resource string) {
	o.hits.WithLabelValues(operation).Inc()
}

func (o *PrometheusObserver) OnCacheMiss(operation, resource string) {
	o.misses.WithLabelValues(operation).Inc()
}

func (o *PrometheusObserver) OnRetryAttempt(operation, resource string, attempt int, delay time.Duration, err *Error) {
	o.retries.WithLabelValues(operation).Inc()
}
