package analytics

import (
	"math"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
)

// Summarize reduces the per-day and per-type results into cohort-level
// totals. AvgAttendance is the mean daily head count of observed check-ins
// (present plus late), rounded half-up, zero when the report has no days.
func Summarize(
	daily []analytics.DailyStat,
	lateEvents []analytics.LateEvent,
	leaveCounts []analytics.LeaveTypeCount,
	cohortSize int,
) analytics.Summary {
	avg := 0
	if len(daily) > 0 {
		total := 0
		for _, day := range daily {
			total += day.Present + day.Late
		}
		avg = int(math.Floor(float64(total)/float64(len(daily)) + 0.5))
	}

	totalLeaves := 0
	for _, lc := range leaveCounts {
		totalLeaves += lc.Count
	}

	return analytics.Summary{
		TotalEmployees: cohortSize,
		AvgAttendance:  avg,
		TotalLate:      len(lateEvents),
		TotalLeaves:    totalLeaves,
	}
}
