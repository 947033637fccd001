package analytics

import (
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
)

// bucketLabel is the display label format for chart axes.
const bucketLabel = "Mon 02 Jan"

// startOfDay truncates an instant to 00:00:00 of its day in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// endOfDay returns 23:59:59.999999999 of the instant's day in loc.
func endOfDay(t time.Time, loc *time.Location) time.Time {
	return startOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// sameDay reports whether two instants fall on the same calendar day in loc.
func sameDay(a, b time.Time, loc *time.Location) bool {
	al, bl := a.In(loc), b.In(loc)
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}

// ExpandRange expands [start, end] into one bucket per calendar day,
// ascending. Inputs are normalized to day boundaries first; a range whose
// start and end fall on the same day yields exactly one bucket.
func ExpandRange(start, end time.Time, loc *time.Location) ([]analytics.DayBucket, error) {
	first := startOfDay(start, loc)
	last := startOfDay(end, loc)

	if first.After(last) {
		return nil, analytics.ErrInvalidDateRange
	}

	var buckets []analytics.DayBucket
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, analytics.DayBucket{
			Date:  day,
			Label: day.Format(bucketLabel),
		})
	}
	return buckets, nil
}
