package attendance

import (
	"time"
)

// Attendance is one logical record for an employee's working day. It is
// created at check-in and refined as the day progresses, so CheckIn and
// CheckOut may each be absent.
type Attendance struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         time.Time
	CheckIn      *time.Time
	CheckOut     *time.Time
	Status       Status
	Location     *string
	PhotoURL     *string
	CreatedAt    time.Time
}

type Status string

const (
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusOnLeave    Status = "on_leave"
	StatusLate       Status = "late"
	StatusMidDay     Status = "mid_day"
)
