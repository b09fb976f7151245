// Package metrics exports engine events to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"depositguard/internal/models"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "depositguard"

// PrometheusCollector implements risk.MetricsCollector.
type PrometheusCollector struct {
	assessments  *prometheus.CounterVec
	duration     prometheus.Histogram
	invalidInput prometheus.Counter
	unavailable  prometheus.Counter
	skippedRows  prometheus.Counter
	degraded     *prometheus.CounterVec
}

// NewPrometheusCollector registers the engine metrics on reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Completed risk assessments by tier and market data source.",
		}, []string{"tier", "data_source"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assessment_duration_seconds",
			Help:      "Time spent producing a risk assessment.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		}),
		invalidInput: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_requests_total",
			Help:      "Assessments rejected for invalid input.",
		}),
		unavailable: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_unavailable_total",
			Help:      "Registry fetches that failed and fell back to an estimate.",
		}),
		skippedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_skipped_rows_total",
			Help:      "Malformed registry rows dropped while parsing.",
		}),
		degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ancillary_degraded_total",
			Help:      "Ancillary lookups that failed and were scored as zero.",
		}, []string{"lookup"}),
	}

	reg.MustRegister(c.assessments, c.duration, c.invalidInput, c.unavailable, c.skippedRows, c.degraded)
	return c
}

func (c *PrometheusCollector) RecordAssessment(tier int, source models.DataSource, d time.Duration) {
	c.assessments.WithLabelValues(strconv.Itoa(tier), string(source)).Inc()
	c.duration.Observe(d.Seconds())
}

func (c *PrometheusCollector) RecordInvalidInput() {
	c.invalidInput.Inc()
}

func (c *PrometheusCollector) RecordUpstreamUnavailable() {
	c.unavailable.Inc()
}

func (c *PrometheusCollector) RecordSkippedRows(n int) {
	if n > 0 {
		c.skippedRows.Add(float64(n))
	}
}

func (c *PrometheusCollector) RecordAncillaryDegraded(lookup string) {
	c.degraded.WithLabelValues(lookup).Inc()
}
