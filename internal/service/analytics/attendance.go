package analytics

import (
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/attendance"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
)

const dateKey = "2006-01-02"

// AggregateAttendance buckets attendance records into per-day present, late
// and absent counts. Only records with a check-in-bearing status count; a
// record without a CheckIn timestamp is indeterminate and excluded from both
// present and late (reported via the skipped count, not treated as absent).
// Absent is estimated as cohort size minus observed check-ins, clamped at
// zero. Output order follows bucket order.
func AggregateAttendance(
	buckets []analytics.DayBucket,
	records []attendance.Attendance,
	cohort map[string]employee.Employee,
	policy LatenessPolicy,
	loc *time.Location,
) ([]analytics.DailyStat, int) {
	stats := make([]analytics.DailyStat, 0, len(buckets))
	skipped := 0

	for _, bucket := range buckets {
		present, late := 0, 0

		for _, rec := range records {
			if !sameDay(rec.Date, bucket.Date, loc) {
				continue
			}
			if _, ok := cohort[rec.EmployeeID]; !ok {
				continue
			}
			if rec.Status != attendance.StatusCheckedIn && rec.Status != attendance.StatusLate {
				continue
			}
			if rec.CheckIn == nil {
				// status says checked in but the timestamp never landed
				skipped++
				continue
			}
			if policy.IsLate(*rec.CheckIn) {
				late++
			} else {
				present++
			}
		}

		absent := len(cohort) - (present + late)
		if absent < 0 {
			absent = 0
		}

		stats = append(stats, analytics.DailyStat{
			Date:    bucket.Date.Format(dateKey),
			Label:   bucket.Label,
			Present: present,
			Late:    late,
			Absent:  absent,
		})
	}

	return stats, skipped
}
