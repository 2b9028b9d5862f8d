package prometheusmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vulpemventures/noir/internal/core/ports"
)

const (
	namespace = "noir"
	subsystem = "keygen"

	statusSuccess = "success"
	statusFailure = "failure"
)

type service struct {
	requests *prometheus.CounterVec
	rejected *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight *prometheus.GaugeVec
}

// NewService returns a ports.Metrics implementation backed by prometheus
// collectors registered with the given registerer.
func NewService(reg prometheus.Registerer) (ports.Metrics, error) {
	svc := &service{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Number of requests served, by method and status.",
		}, []string{"method", "status"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_rejected_total",
			Help:      "Number of requests dropped while waiting for a worker.",
		}, []string{"method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Time spent serving requests, by method.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"method"}),
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_in_flight",
			Help:      "Number of requests currently running in the worker pool.",
		}, []string{"method"}),
	}

	for _, c := range []prometheus.Collector{
		svc.requests, svc.rejected, svc.duration, svc.inFlight,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

func (s *service) RequestRejected(method string) {
	s.rejected.WithLabelValues(method).Inc()
}

func (s *service) RequestStarted(method string) {
	s.inFlight.WithLabelValues(method).Inc()
}

func (s *service) RequestFinished(
	method string, success bool, elapsed time.Duration,
) {
	status := statusFailure
	if success {
		status = statusSuccess
	}
	s.inFlight.WithLabelValues(method).Dec()
	s.requests.WithLabelValues(method, status).Inc()
	s.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
