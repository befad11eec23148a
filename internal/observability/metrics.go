// Package observability wires the service's lifecycle hooks to Prometheus.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/abacus"
)

// Metrics holds the Prometheus collectors for the conversion service.
type Metrics struct {
	Conversions *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	CacheHits   prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "abacus_conversions_total",
				Help: "Total number of conversion attempts",
			},
			[]string{"direction", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "abacus_conversion_duration_seconds",
				Help: "Duration of conversions",
			},
			[]string{"direction"},
		),
		CacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "abacus_cache_hits_total",
				Help: "Total number of conversions served from the cache",
			},
		),
	}
	reg.MustRegister(m.Conversions, m.Duration, m.CacheHits)
	return m
}

// Hooks returns service hooks feeding these collectors.
func (m *Metrics) Hooks() abacus.Hooks {
	return abacus.Hooks{
		OnConvert: func(_ context.Context, e *abacus.ConversionEvent) {
			outcome := "ok"
			if e.Err != nil {
				outcome = "error"
			}
			m.Conversions.WithLabelValues(string(e.Direction), outcome).Inc()
			m.Duration.WithLabelValues(string(e.Direction)).Observe(e.Duration.Seconds())
			if e.Cached {
				m.CacheHits.Inc()
			}
		},
	}
}
