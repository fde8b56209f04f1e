package executor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess        = "success"
	outcomeSessionExpired = "session_expired"
	outcomeAPIError       = "api_error"
	outcomeHTTPError      = "http_error"
	outcomeNetworkError   = "network_error"
)

// Metrics records per-call counters and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ainote",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "API calls by method and outcome.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ainote",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.requests, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Requests exposes the counter for tests and custom registries.
func (m *Metrics) Requests() *prometheus.CounterVec {
	return m.requests
}

func (m *Metrics) observe(method Method, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(string(method), outcome).Inc()
	m.duration.WithLabelValues(string(method)).Observe(elapsed.Seconds())
}
