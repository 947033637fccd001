package leave

import (
	"time"
)

// Request is a leave request covering [StartDate, EndDate]. A single-day
// leave has StartDate == EndDate.
type Request struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	LeaveType    Type
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	CreatedAt    time.Time
}

type Type string

const (
	TypePersonal Type = "personal"
	TypeSick     Type = "sick"
	TypeVacation Type = "vacation"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)
