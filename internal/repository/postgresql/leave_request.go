package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/leave"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// ListOverlapping implements leave.LeaveRepository.
func (r *leaveRepository) ListOverlapping(ctx context.Context, start, end time.Time) ([]leave.Request, error) {
	query := `
		SELECT id, employee_id, employee_name, leave_type, start_date, end_date,
			   reason, status, created_at
		FROM leave_requests
		WHERE start_date <= $2
		  AND end_date >= $1
		ORDER BY start_date, created_at
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.EmployeeName, &req.LeaveType, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
