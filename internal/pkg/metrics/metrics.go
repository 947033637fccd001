// Package metrics provides Prometheus observability metrics for the
// analytics backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// ReportsGeneratedTotal counts report runs by employee type filter.
var ReportsGeneratedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "analytics",
	Name:      "reports_generated_total",
	Help:      "Total analytics reports generated, by employee type filter",
}, []string{"employee_type"})

// ReportDurationSeconds tracks end-to-end report generation time, fetch
// included.
var ReportDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "analytics",
	Name:      "report_duration_seconds",
	Help:      "Time taken to fetch records and aggregate a report",
	Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
})

// SkippedRecordsTotal counts malformed records excluded from aggregation.
// A rising rate points at data-entry problems upstream.
var SkippedRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "analytics",
	Name:      "skipped_records_total",
	Help:      "Total malformed records excluded from report totals",
})

// ReportDaySpan tracks how many day buckets each report covers.
var ReportDaySpan = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "analytics",
	Name:      "report_day_span",
	Help:      "Number of calendar days covered per report",
	Buckets:   []float64{1, 7, 14, 31, 92, 366},
})
