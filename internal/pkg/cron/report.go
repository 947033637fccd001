package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/settings"
)

// ReportJobs holds the scheduled reporting tasks.
type ReportJobs struct {
	analyticsSvc analytics.AnalyticsService
	settingsRepo settings.SettingsRepository
	loc          *time.Location
}

func NewReportJobs(
	analyticsSvc analytics.AnalyticsService,
	settingsRepo settings.SettingsRepository,
	loc *time.Location,
) *ReportJobs {
	return &ReportJobs{
		analyticsSvc: analyticsSvc,
		settingsRepo: settingsRepo,
		loc:          loc,
	}
}

func (j *ReportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_summary_report", 1*time.Hour, j.DailySummaryReport)
}

// DailySummaryReport logs today's attendance summary once the configured
// check-out hour has passed. The hourly tick makes it fire at most once per
// hour; the hour guard narrows that to a single run per day.
func (j *ReportJobs) DailySummaryReport(ctx context.Context) error {
	cfg, err := j.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get work time settings: %w", err)
	}

	if !cfg.EnableDailyReport {
		return nil
	}

	now := time.Now().In(j.loc)
	if now.Hour() != cfg.CheckOutHour {
		return nil
	}

	today := now.Format("2006-01-02")
	report, err := j.analyticsSvc.GenerateReport(ctx, analytics.ReportRequest{
		StartDate:    today,
		EndDate:      today,
		EmployeeType: analytics.TypeFilterAll,
	})
	if err != nil {
		return fmt.Errorf("failed to generate daily summary report: %w", err)
	}

	slog.Info("Daily attendance summary",
		"date", today,
		"total_employees", report.Summary.TotalEmployees,
		"avg_attendance", report.Summary.AvgAttendance,
		"total_late", report.Summary.TotalLate,
		"total_leaves", report.Summary.TotalLeaves,
		"skipped_records", report.SkippedRecords,
	)

	return nil
}
