package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines the interface for attendance record access
type AttendanceRepository interface {
	// ListByDateRange returns records whose date falls inside [start, end].
	// Callers re-filter by exact day membership; the query only scopes the
	// result to tolerate timezone slop at the boundaries.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
}
