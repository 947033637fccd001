package analytics

import (
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
	"github.com/worktime-th/analytics-backend-go/internal/domain/leave"
)

// AggregateLeave counts approved leave requests per leave type. A request is
// in scope when its [StartDate, EndDate] day span overlaps the report range.
// Types with no approved requests are omitted entirely; an empty result
// means no leave in range. Output order is first appearance in the source
// collection, so repeated runs over identical input are identical.
func AggregateLeave(
	requests []leave.Request,
	cohort map[string]employee.Employee,
	rangeStart, rangeEnd time.Time,
	loc *time.Location,
) []analytics.LeaveTypeCount {
	first := startOfDay(rangeStart, loc)
	last := endOfDay(rangeEnd, loc)

	counts := make(map[string]int)
	var order []string

	for _, req := range requests {
		if req.Status != leave.StatusApproved {
			continue
		}
		if _, ok := cohort[req.EmployeeID]; !ok {
			continue
		}
		if startOfDay(req.StartDate, loc).After(last) || endOfDay(req.EndDate, loc).Before(first) {
			continue
		}

		key := string(req.LeaveType)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	dist := make([]analytics.LeaveTypeCount, 0, len(order))
	for _, key := range order {
		dist = append(dist, analytics.LeaveTypeCount{LeaveType: key, Count: counts[key]})
	}
	return dist
}
