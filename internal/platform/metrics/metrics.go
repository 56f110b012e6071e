// Package metrics exposes Prometheus metrics for chart input validation.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ValidationMetrics counts validation outcomes per chart query field.
//
// Labels:
//   - field: symbol, chart_type, time_series, start_date, end_date
//   - valid: "true" / "false"
type ValidationMetrics struct {
	fields *prometheus.CounterVec
}

// NewValidationMetrics registers the validation counters on reg and
// pre-initializes the given fields so rate() queries have a series from startup.
func NewValidationMetrics(reg prometheus.Registerer, fields ...string) *ValidationMetrics {
	m := &ValidationMetrics{
		fields: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "chart_input_validations_total",
			Help: "Chart query field validations by field and outcome",
		}, []string{"field", "valid"}),
	}
	for _, f := range fields {
		m.fields.WithLabelValues(f, "true").Add(0)
		m.fields.WithLabelValues(f, "false").Add(0)
	}
	return m
}

// ObserveField records one validation outcome for field.
func (m *ValidationMetrics) ObserveField(field string, valid bool) {
	m.fields.WithLabelValues(field, strconv.FormatBool(valid)).Inc()
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves reg in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
