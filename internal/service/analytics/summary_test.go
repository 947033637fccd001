package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	daily := []analytics.DailyStat{
		{Date: "2024-01-10", Present: 4, Late: 1, Absent: 0},
		{Date: "2024-01-11", Present: 3, Late: 0, Absent: 2},
		{Date: "2024-01-12", Present: 5, Late: 2, Absent: 0},
	}
	lateEvents := []analytics.LateEvent{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	leaveCounts := []analytics.LeaveTypeCount{
		{LeaveType: "sick", Count: 2},
		{LeaveType: "vacation", Count: 1},
	}

	got := Summarize(daily, lateEvents, leaveCounts, 5)
	assert.Equal(t, analytics.Summary{
		TotalEmployees: 5,
		AvgAttendance:  5, // (5+3+7)/3 = 5
		TotalLate:      3,
		TotalLeaves:    3,
	}, got)
}

func TestSummarize_AverageRoundsHalfUp(t *testing.T) {
	t.Parallel()

	daily := []analytics.DailyStat{
		{Date: "2024-01-10", Present: 2},
		{Date: "2024-01-11", Present: 3},
	}

	// 5/2 = 2.5, rounds up to 3
	got := Summarize(daily, nil, nil, 4)
	assert.Equal(t, 3, got.AvgAttendance)
}

func TestSummarize_NoDays(t *testing.T) {
	t.Parallel()

	got := Summarize(nil, nil, nil, 8)
	assert.Equal(t, 0, got.AvgAttendance)
	assert.Equal(t, 8, got.TotalEmployees)
	assert.Equal(t, 0, got.TotalLate)
	assert.Equal(t, 0, got.TotalLeaves)
}
