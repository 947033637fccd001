package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
)

// AttendanceCSV renders the daily attendance series as a flat CSV table.
// Rows keep the report's chronological order.
func AttendanceCSV(report analytics.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Present", "Late", "Absent"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, day := range report.DailyAttendance {
		row := []string{
			day.Date,
			strconv.Itoa(day.Present),
			strconv.Itoa(day.Late),
			strconv.Itoa(day.Absent),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// Filename derives the attachment name from the report range.
func Filename(report analytics.Report) string {
	return fmt.Sprintf("attendance_%s_%s.csv", report.StartDate, report.EndDate)
}
