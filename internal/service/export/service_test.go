package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
)

func TestAttendanceCSV(t *testing.T) {
	t.Parallel()

	report := analytics.Report{
		StartDate: "2024-01-10",
		EndDate:   "2024-01-11",
		DailyAttendance: []analytics.DailyStat{
			{Date: "2024-01-10", Present: 4, Late: 1, Absent: 0},
			{Date: "2024-01-11", Present: 3, Late: 0, Absent: 2},
		},
	}

	out, err := AttendanceCSV(report)
	require.NoError(t, err)
	assert.Equal(t, "Date,Present,Late,Absent\n2024-01-10,4,1,0\n2024-01-11,3,0,2\n", string(out))
}

func TestAttendanceCSV_EmptyReport(t *testing.T) {
	t.Parallel()

	out, err := AttendanceCSV(analytics.Report{})
	require.NoError(t, err)
	assert.Equal(t, "Date,Present,Late,Absent\n", string(out))
}

func TestFilename(t *testing.T) {
	t.Parallel()

	name := Filename(analytics.Report{StartDate: "2024-01-10", EndDate: "2024-01-16"})
	assert.Equal(t, "attendance_2024-01-10_2024-01-16.csv", name)
}
