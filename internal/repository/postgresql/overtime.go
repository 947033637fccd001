package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/overtime"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

// ListByDateRange implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]overtime.Request, error) {
	query := `
		SELECT id, employee_id, employee_name, date, start_time, end_time,
			   reason, status, created_at
		FROM overtime_requests
		WHERE date >= $1
		  AND date <= $2
		ORDER BY date, created_at
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.Request
	for rows.Next() {
		var req overtime.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.EmployeeName, &req.Date, &req.StartTime, &req.EndTime,
			&req.Reason, &req.Status, &req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime requests: %w", err)
	}

	return requests, nil
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}
