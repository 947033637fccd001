package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/attendance"
	"github.com/worktime-th/analytics-backend-go/internal/domain/leave"
	"github.com/worktime-th/analytics-backend-go/internal/domain/overtime"
	"github.com/worktime-th/analytics-backend-go/internal/domain/settings"
)

func testRawRecords() rawRecords {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return rawRecords{
		employees: testRoster(),
		attendance: []attendance.Attendance{
			{EmployeeID: "M1", Date: day, Status: attendance.StatusCheckedIn,
				CheckIn: tp(time.Date(2024, 1, 10, 8, 55, 0, 0, time.UTC))},
			{EmployeeID: "M2", Date: day, Status: attendance.StatusCheckedIn,
				CheckIn: tp(time.Date(2024, 1, 10, 9, 40, 0, 0, time.UTC))},
			{EmployeeID: "D1", Date: day, Status: attendance.StatusCheckedIn,
				CheckIn: tp(time.Date(2024, 1, 10, 9, 50, 0, 0, time.UTC))},
		},
		overtime: []overtime.Request{
			{EmployeeID: "M1", Date: day, Status: overtime.StatusApproved,
				StartTime: tp(time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)),
				EndTime:   tp(time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC))},
		},
		leave: []leave.Request{
			{EmployeeID: "M3", LeaveType: leave.TypeSick, Status: leave.StatusApproved,
				StartDate: day, EndDate: day},
		},
		config: settings.DefaultWorkTimeConfig(),
	}
}

func testService() *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{loc: time.UTC}
}

func TestBuildReport_Deterministic(t *testing.T) {
	t.Parallel()

	s := testService()
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	buckets := mustBuckets(t, start, end)
	data := testRawRecords()

	first := s.buildReport(buckets, start, end, analytics.TypeFilterAll, data)
	second := s.buildReport(buckets, start, end, analytics.TypeFilterAll, data)
	assert.Equal(t, first, second)
}

func TestBuildReport_TypeFilterScopesEverything(t *testing.T) {
	t.Parallel()

	s := testService()
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	buckets := mustBuckets(t, start, end)

	report := s.buildReport(buckets, start, end, "daily", testRawRecords())

	assert.Equal(t, 3, report.Summary.TotalEmployees)
	require.Len(t, report.EmployeeTypeDistribution, 1)
	assert.Equal(t, analytics.TypeCount{Type: "daily", Count: 3}, report.EmployeeTypeDistribution[0])

	// only D1's late check-in survives the filter; M2's is excluded everywhere
	require.Len(t, report.LateEvents, 1)
	assert.Equal(t, "D1", report.LateEvents[0].EmployeeID)
	require.Len(t, report.DailyAttendance, 1)
	assert.Equal(t, 0, report.DailyAttendance[0].Present)
	assert.Equal(t, 1, report.DailyAttendance[0].Late)
	assert.Equal(t, 2, report.DailyAttendance[0].Absent)

	// M1's overtime and M3's leave fall out of scope as well
	assert.Equal(t, 0.0, report.OvertimeByDay[0].Hours)
	assert.Empty(t, report.LeaveTypeDistribution)
	assert.Equal(t, 0, report.Summary.TotalLeaves)
}

func TestBuildReport_AllTypes(t *testing.T) {
	t.Parallel()

	s := testService()
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	buckets := mustBuckets(t, start, end)

	report := s.buildReport(buckets, start, end, analytics.TypeFilterAll, testRawRecords())

	assert.Equal(t, "2024-01-10", report.StartDate)
	assert.Equal(t, "2024-01-10", report.EndDate)
	assert.Equal(t, 10, report.Summary.TotalEmployees)
	assert.Equal(t, 2, report.Summary.TotalLate)
	assert.Equal(t, 1, report.Summary.TotalLeaves)
	assert.Equal(t, 3, report.Summary.AvgAttendance)

	require.Len(t, report.DailyAttendance, 1)
	assert.Equal(t, 1, report.DailyAttendance[0].Present)
	assert.Equal(t, 2, report.DailyAttendance[0].Late)
	assert.Equal(t, 7, report.DailyAttendance[0].Absent)

	require.Len(t, report.OvertimeByDay, 1)
	assert.Equal(t, 2.0, report.OvertimeByDay[0].Hours)

	assert.Equal(t, 0, report.SkippedRecords)
}

func TestBuildReport_CountsSkippedRecords(t *testing.T) {
	t.Parallel()

	s := testService()
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	buckets := mustBuckets(t, start, end)

	data := testRawRecords()
	data.attendance = append(data.attendance, attendance.Attendance{
		EmployeeID: "M4", Date: start, Status: attendance.StatusCheckedIn,
	})
	data.overtime = append(data.overtime, overtime.Request{
		EmployeeID: "M5", Date: start, Status: overtime.StatusApproved,
		StartTime: tp(time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)),
		EndTime:   tp(time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)),
	})

	report := s.buildReport(buckets, start, end, analytics.TypeFilterAll, data)
	assert.Equal(t, 2, report.SkippedRecords)
}

func TestParseRange(t *testing.T) {
	t.Parallel()

	s := testService()

	start, end, err := s.parseRange("2024-01-10", "2024-01-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 12, end.Day())
	assert.Equal(t, 23, end.Hour())

	_, _, err = s.parseRange("10/01/2024", "2024-01-12")
	assert.Error(t, err)
}
