package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/attendance"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

// ListByDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT id, employee_id, employee_name, date, check_in, check_out,
			   status, location, photo_url, created_at
		FROM attendance_records
		WHERE date >= $1
		  AND date <= $2
		ORDER BY date, created_at
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.Status, &rec.Location, &rec.PhotoURL, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
