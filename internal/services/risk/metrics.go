package risk

import (
	"time"

	"depositguard/internal/models"
)

// MetricsCollector receives engine events.
type MetricsCollector interface {
	RecordAssessment(tier int, source models.DataSource, duration time.Duration)
	RecordInvalidInput()
	RecordUpstreamUnavailable()
	RecordSkippedRows(n int)
	RecordAncillaryDegraded(lookup string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordAssessment(int, models.DataSource, time.Duration) {}
func (n *NoopMetricsCollector) RecordInvalidInput()                                    {}
func (n *NoopMetricsCollector) RecordUpstreamUnavailable()                             {}
func (n *NoopMetricsCollector) RecordSkippedRows(int)                                  {}
func (n *NoopMetricsCollector) RecordAncillaryDegraded(string)                         {}
