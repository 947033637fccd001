package analytics

import (
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/pkg/validator"
)

// TypeFilterAll selects the whole roster regardless of employment type.
const TypeFilterAll = "all"

type ReportRequest struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	EmployeeType string `json:"employee_type"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EmployeeType) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_type",
			Message: "employee_type is required (use \"all\" for every employee)",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayBucket is one calendar day inside the report range.
type DayBucket struct {
	Date  time.Time
	Label string
}

// TypeCount is one slice of the employment type distribution, computed after
// the cohort filter is applied.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// DailyStat is the per-day attendance breakdown. Absent is an estimate:
// cohort size minus observed present and late, clamped at zero.
type DailyStat struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}

// OvertimeByDay is the approved OT hour total for one day, rounded to two
// decimal places.
type OvertimeByDay struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

type LeaveTypeCount struct {
	LeaveType string `json:"leave_type"`
	Count     int    `json:"count"`
}

// LateEvent is one individual late check-in. ID is a deterministic surrogate
// key so repeated runs over identical input produce identical lists.
type LateEvent struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	CheckInTime  string `json:"check_in_time"`
	LateMinutes  int    `json:"late_minutes"`
	Department   string `json:"department"`
}

type Summary struct {
	TotalEmployees int `json:"total_employees"`
	AvgAttendance  int `json:"avg_attendance"`
	TotalLate      int `json:"total_late"`
	TotalLeaves    int `json:"total_leaves"`
}

// Report is the engine's sole output, wholly derived from the fetched record
// collections and the lateness policy.
type Report struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GeneratedAt string `json:"generated_at"`

	EmployeeTypeDistribution []TypeCount      `json:"employee_type_distribution"`
	DailyAttendance          []DailyStat      `json:"daily_attendance"`
	OvertimeByDay            []OvertimeByDay  `json:"overtime_by_day"`
	LeaveTypeDistribution    []LeaveTypeCount `json:"leave_type_distribution"`
	LateEvents               []LateEvent      `json:"late_events"`
	Summary                  Summary          `json:"summary"`

	// SkippedRecords counts malformed records excluded from the totals
	SkippedRecords int `json:"skipped_records"`
}
