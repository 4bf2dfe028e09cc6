// Package observability exposes Prometheus metrics for store operations.
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/sacis/internal/db"
)

// StoreMetrics records the outcome and latency of every connector operation.
type StoreMetrics struct {
	gatherer prometheus.Gatherer

	Operations *prometheus.CounterVec
	Durations  *prometheus.HistogramVec
}

// NewStoreMetrics registers store metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewStoreMetrics(reg prometheus.Registerer) (*StoreMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	operations, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sacis_store_operations_total",
		Help: "Store operations, labeled by operation and outcome.",
	}, []string{"op", "outcome"}), "sacis_store_operations_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sacis_store_operation_duration_seconds",
		Help:    "Store operation latency in seconds, including connection acquisition.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5, 10},
	}, []string{"op"}), "sacis_store_operation_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &StoreMetrics{
		gatherer:   gatherer,
		Operations: operations,
		Durations:  durations,
	}, nil
}

// ObserveOperation satisfies db.OperationObserver.
func (m *StoreMetrics) ObserveOperation(op, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
	m.Durations.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Handler exposes a ready-to-use /metrics handler.
func (m *StoreMetrics) Handler() http.Handler {
	gatherer := m.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

var _ db.OperationObserver = (*StoreMetrics)(nil)
