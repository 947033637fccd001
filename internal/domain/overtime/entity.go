package overtime

import (
	"time"
)

// Request is an overtime request for a single working day. StartTime and
// EndTime are pointers because the upstream data entry does not guarantee
// either; aggregation treats a missing side as a malformed record.
type Request struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         time.Time
	StartTime    *time.Time
	EndTime      *time.Time
	Reason       string
	Status       Status
	CreatedAt    time.Time
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)
