package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/attendance"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
)

// BuildLateRoster produces the detail list of individual late check-ins,
// selected with the same criterion as the late branch of the daily
// aggregation. Events are ordered most recent day first; entries on the same
// day keep their source-collection order.
func BuildLateRoster(
	records []attendance.Attendance,
	cohort map[string]employee.Employee,
	policy LatenessPolicy,
	rangeStart, rangeEnd time.Time,
	loc *time.Location,
) []analytics.LateEvent {
	first := startOfDay(rangeStart, loc)
	last := endOfDay(rangeEnd, loc)

	var events []analytics.LateEvent
	for idx, rec := range records {
		if rec.Status != attendance.StatusCheckedIn && rec.Status != attendance.StatusLate {
			continue
		}
		if rec.CheckIn == nil {
			continue
		}
		day := startOfDay(rec.Date, loc)
		if day.Before(first) || day.After(last) {
			continue
		}
		emp, ok := cohort[rec.EmployeeID]
		if !ok {
			continue
		}
		if !policy.IsLate(*rec.CheckIn) {
			continue
		}

		name := emp.FullName
		if name == "" {
			name = rec.EmployeeName
		}
		department := ""
		if emp.Department != nil {
			department = *emp.Department
		}
		dateStr := day.Format(dateKey)

		events = append(events, analytics.LateEvent{
			ID:           surrogateID(rec.EmployeeID, dateStr, idx),
			EmployeeID:   rec.EmployeeID,
			EmployeeName: name,
			Date:         dateStr,
			CheckInTime:  rec.CheckIn.In(loc).Format("15:04"),
			LateMinutes:  policy.LateMinutes(*rec.CheckIn),
			Department:   department,
		})
	}

	// ISO dates compare lexicographically; stable keeps source order per day
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date > events[j].Date
	})
	return events
}

// surrogateID derives a reproducible key from the record's natural fields,
// replacing the random fallback ids the raw data may carry.
func surrogateID(employeeID, date string, idx int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s|%s|%d", employeeID, date, idx))).String()
}
