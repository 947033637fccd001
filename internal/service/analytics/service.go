package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/attendance"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
	"github.com/worktime-th/analytics-backend-go/internal/domain/leave"
	"github.com/worktime-th/analytics-backend-go/internal/domain/overtime"
	"github.com/worktime-th/analytics-backend-go/internal/domain/settings"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

type AnalyticsServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	overtimeRepo   overtime.OvertimeRepository
	leaveRepo      leave.LeaveRepository
	settingsRepo   settings.SettingsRepository
	loc            *time.Location
}

func NewAnalyticsService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	leaveRepo leave.LeaveRepository,
	settingsRepo settings.SettingsRepository,
	loc *time.Location,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		leaveRepo:      leaveRepo,
		settingsRepo:   settingsRepo,
		loc:            loc,
	}
}

// rawRecords holds the four record collections plus the work-time config,
// materialized before any aggregation begins.
type rawRecords struct {
	employees  []employee.Employee
	attendance []attendance.Attendance
	overtime   []overtime.Request
	leave      []leave.Request
	config     settings.WorkTimeConfig
}

// GenerateReport validates the request, fetches the record collections
// concurrently, and reduces them into a Report. Aggregation never starts
// before every fetch has completed; a failed or cancelled fetch aborts the
// whole run with no partial result.
func (s *AnalyticsServiceImpl) GenerateReport(ctx context.Context, req analytics.ReportRequest) (analytics.Report, error) {
	if err := req.Validate(); err != nil {
		return analytics.Report{}, err
	}

	start, end, err := s.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return analytics.Report{}, err
	}

	buckets, err := ExpandRange(start, end, s.loc)
	if err != nil {
		return analytics.Report{}, err
	}

	began := time.Now()

	data, err := s.fetchRecords(ctx, start, end)
	if err != nil {
		return analytics.Report{}, err
	}

	report := s.buildReport(buckets, start, end, req.EmployeeType, data)
	report.GeneratedAt = time.Now().Format(time.RFC3339)

	metrics.ReportsGeneratedTotal.WithLabelValues(req.EmployeeType).Inc()
	metrics.ReportDurationSeconds.Observe(time.Since(began).Seconds())
	metrics.ReportDaySpan.Observe(float64(len(buckets)))
	metrics.SkippedRecordsTotal.Add(float64(report.SkippedRecords))

	return report, nil
}

// parseRange turns the request dates into local day boundaries.
func (s *AnalyticsServiceImpl) parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", startDate, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date: %w", err)
	}
	return startOfDay(start, s.loc), endOfDay(end, s.loc), nil
}

// fetchRecords scatter/gathers the independent collection fetches. The
// storage queries are range-scoped but may include boundary slop; the
// aggregators re-filter by exact day membership.
func (s *AnalyticsServiceImpl) fetchRecords(ctx context.Context, start, end time.Time) (rawRecords, error) {
	var data rawRecords

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		employees, err := s.employeeRepo.ListAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch employees: %w", err)
		}
		data.employees = employees
		return nil
	})

	g.Go(func() error {
		records, err := s.attendanceRepo.ListByDateRange(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to fetch attendance records: %w", err)
		}
		data.attendance = records
		return nil
	})

	g.Go(func() error {
		requests, err := s.overtimeRepo.ListByDateRange(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to fetch overtime requests: %w", err)
		}
		data.overtime = requests
		return nil
	})

	g.Go(func() error {
		requests, err := s.leaveRepo.ListOverlapping(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to fetch leave requests: %w", err)
		}
		data.leave = requests
		return nil
	})

	g.Go(func() error {
		cfg, err := s.settingsRepo.Get(gCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch work time config: %w", err)
		}
		data.config = cfg
		return nil
	})

	if err := g.Wait(); err != nil {
		return rawRecords{}, err
	}
	return data, nil
}

// buildReport is the pure aggregation core: identical inputs always produce
// an identical report.
func (s *AnalyticsServiceImpl) buildReport(
	buckets []analytics.DayBucket,
	start, end time.Time,
	typeFilter string,
	data rawRecords,
) analytics.Report {
	cohort := ResolveCohort(data.employees, typeFilter)
	policy := PolicyFromConfig(data.config, s.loc)

	daily, skippedAttendance := AggregateAttendance(buckets, data.attendance, cohort, policy, s.loc)
	otByDay, skippedOT := AggregateOvertime(buckets, data.overtime, cohort, s.loc)
	leaveCounts := AggregateLeave(data.leave, cohort, start, end, s.loc)
	lateEvents := BuildLateRoster(data.attendance, cohort, policy, start, end, s.loc)

	return analytics.Report{
		StartDate:                startOfDay(start, s.loc).Format(dateKey),
		EndDate:                  startOfDay(end, s.loc).Format(dateKey),
		EmployeeTypeDistribution: TypeDistribution(cohort),
		DailyAttendance:          daily,
		OvertimeByDay:            otByDay,
		LeaveTypeDistribution:    leaveCounts,
		LateEvents:               lateEvents,
		Summary:                  Summarize(daily, lateEvents, leaveCounts, len(cohort)),
		SkippedRecords:           skippedAttendance + skippedOT,
	}
}
