package analytics

import "context"

// AnalyticsService defines the interface for report generation
type AnalyticsService interface {
	// GenerateReport runs the aggregation engine over the requested date
	// range and employee cohort
	GenerateReport(ctx context.Context, req ReportRequest) (Report, error)
}
