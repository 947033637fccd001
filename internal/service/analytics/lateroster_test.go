package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktime-th/analytics-backend-go/internal/domain/attendance"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
)

func TestBuildLateRoster_SelectsLateCheckIns(t *testing.T) {
	t.Parallel()

	rangeStart := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	dept := "Operations"
	cohort := map[string]employee.Employee{
		"E1": {ID: "E1", FullName: "Arthit S.", Department: &dept, EmploymentType: employee.EmploymentTypeMonthly},
		"E2": {ID: "E2", FullName: "Benjarat K.", EmploymentType: employee.EmploymentTypeMonthly},
	}

	records := []attendance.Attendance{
		{EmployeeID: "E1", Date: rangeStart, Status: attendance.StatusCheckedIn,
			CheckIn: tp(time.Date(2024, 1, 10, 9, 45, 0, 0, time.UTC))},
		{EmployeeID: "E2", Date: rangeStart, Status: attendance.StatusCheckedIn,
			CheckIn: tp(time.Date(2024, 1, 10, 8, 50, 0, 0, time.UTC))},
	}

	events := BuildLateRoster(records, cohort, testPolicy(), rangeStart, rangeEnd, time.UTC)
	require.Len(t, events, 1)
	assert.Equal(t, "E1", events[0].EmployeeID)
	assert.Equal(t, "Arthit S.", events[0].EmployeeName)
	assert.Equal(t, "2024-01-10", events[0].Date)
	assert.Equal(t, "09:45", events[0].CheckInTime)
	assert.Equal(t, 30, events[0].LateMinutes)
	assert.Equal(t, "Operations", events[0].Department)
}

func TestBuildLateRoster_OrderedMostRecentFirst(t *testing.T) {
	t.Parallel()

	rangeStart := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	cohort := cohortOf("E1", "E2", "E3")

	late := func(id string, day, hour, minute int) attendance.Attendance {
		return attendance.Attendance{
			EmployeeID: id,
			Date:       time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusCheckedIn,
			CheckIn:    tp(time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)),
		}
	}

	records := []attendance.Attendance{
		late("E1", 9, 10, 0),
		late("E2", 11, 9, 30),
		late("E3", 11, 9, 40),
		late("E1", 10, 9, 20),
	}

	events := BuildLateRoster(records, cohort, testPolicy(), rangeStart, rangeEnd, time.UTC)
	require.Len(t, events, 4)
	assert.Equal(t, "2024-01-11", events[0].Date)
	assert.Equal(t, "2024-01-11", events[1].Date)
	assert.Equal(t, "2024-01-10", events[2].Date)
	assert.Equal(t, "2024-01-09", events[3].Date)

	// entries on the same day keep their source order
	assert.Equal(t, "E2", events[0].EmployeeID)
	assert.Equal(t, "E3", events[1].EmployeeID)
}

func TestBuildLateRoster_DeterministicIDs(t *testing.T) {
	t.Parallel()

	rangeStart := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	cohort := cohortOf("E1")

	records := []attendance.Attendance{
		{EmployeeID: "E1", Date: rangeStart, Status: attendance.StatusCheckedIn,
			CheckIn: tp(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC))},
	}

	first := BuildLateRoster(records, cohort, testPolicy(), rangeStart, rangeEnd, time.UTC)
	second := BuildLateRoster(records, cohort, testPolicy(), rangeStart, rangeEnd, time.UTC)
	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first[0].ID)
}

func TestBuildLateRoster_Exclusions(t *testing.T) {
	t.Parallel()

	rangeStart := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	lateCheckIn := tp(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC))

	records := []attendance.Attendance{
		// wrong status
		{EmployeeID: "E1", Date: rangeStart, Status: attendance.StatusOnLeave, CheckIn: lateCheckIn},
		// no check-in timestamp
		{EmployeeID: "E1", Date: rangeStart, Status: attendance.StatusCheckedIn},
		// out of cohort
		{EmployeeID: "OTHER", Date: rangeStart, Status: attendance.StatusCheckedIn, CheckIn: lateCheckIn},
		// out of range
		{EmployeeID: "E1", Date: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
			Status: attendance.StatusCheckedIn, CheckIn: tp(time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC))},
	}

	events := BuildLateRoster(records, cohortOf("E1"), testPolicy(), rangeStart, rangeEnd, time.UTC)
	assert.Empty(t, events)
}

func TestBuildLateRoster_NameFallsBackToRecord(t *testing.T) {
	t.Parallel()

	rangeStart := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	records := []attendance.Attendance{
		{EmployeeID: "E1", EmployeeName: "Denormalized Name", Date: rangeStart,
			Status:  attendance.StatusCheckedIn,
			CheckIn: tp(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC))},
	}

	events := BuildLateRoster(records, cohortOf("E1"), testPolicy(), rangeStart, rangeEnd, time.UTC)
	require.Len(t, events, 1)
	assert.Equal(t, "Denormalized Name", events[0].EmployeeName)
}
