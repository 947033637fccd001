package analytics

import (
	"math"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
	"github.com/worktime-th/analytics-backend-go/internal/domain/overtime"
)

// AggregateOvertime sums approved OT hours per bucket day. Requests missing
// either timestamp, or with an end at or before the start, contribute zero
// hours and are reported via the skipped count. Days without qualifying
// requests report 0 rather than being omitted.
func AggregateOvertime(
	buckets []analytics.DayBucket,
	requests []overtime.Request,
	cohort map[string]employee.Employee,
	loc *time.Location,
) ([]analytics.OvertimeByDay, int) {
	totals := make([]analytics.OvertimeByDay, 0, len(buckets))
	skipped := 0

	for _, bucket := range buckets {
		hours := 0.0

		for _, req := range requests {
			if req.Status != overtime.StatusApproved {
				continue
			}
			if _, ok := cohort[req.EmployeeID]; !ok {
				continue
			}
			if !sameDay(req.Date, bucket.Date, loc) {
				continue
			}
			if req.StartTime == nil || req.EndTime == nil {
				skipped++
				continue
			}
			dur := req.EndTime.Sub(*req.StartTime)
			if dur <= 0 {
				// inverted interval; upstream data entry does not validate
				// this, so clamp to zero contribution instead of failing
				skipped++
				continue
			}
			hours += dur.Hours()
		}

		totals = append(totals, analytics.OvertimeByDay{
			Date:  bucket.Date.Format(dateKey),
			Label: bucket.Label,
			Hours: roundHours(hours),
		})
	}

	return totals, skipped
}

// roundHours rounds half-up to two decimal places.
func roundHours(h float64) float64 {
	return math.Floor(h*100+0.5) / 100
}
