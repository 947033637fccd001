package leave

import (
	"context"
	"time"
)

// LeaveRepository defines the interface for leave request access
type LeaveRepository interface {
	// ListOverlapping returns requests whose [StartDate, EndDate] span
	// overlaps [start, end]
	ListOverlapping(ctx context.Context, start, end time.Time) ([]Request, error)
}
