package overtime

import (
	"context"
	"time"
)

// OvertimeRepository defines the interface for OT request access
type OvertimeRepository interface {
	// ListByDateRange returns requests whose date falls inside [start, end]
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Request, error)
}
