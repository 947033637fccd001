package analytics

import (
	"math"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/settings"
)

// LatenessPolicy classifies a check-in instant against the scheduled
// check-in time plus a grace period. The comparison is done on the
// check-in's wall-clock time of day in Location.
type LatenessPolicy struct {
	ScheduledHour   int
	ScheduledMinute int
	GraceMinutes    int
	Location        *time.Location
}

func PolicyFromConfig(cfg settings.WorkTimeConfig, loc *time.Location) LatenessPolicy {
	return LatenessPolicy{
		ScheduledHour:   cfg.CheckInHour,
		ScheduledMinute: cfg.CheckInMinute,
		GraceMinutes:    cfg.LateGraceMinutes,
		Location:        loc,
	}
}

// graceLimit returns the latest on-time instant for the check-in's day.
func (p LatenessPolicy) graceLimit(checkIn time.Time) time.Time {
	local := checkIn.In(p.loc())
	scheduled := time.Date(
		local.Year(), local.Month(), local.Day(),
		p.ScheduledHour, p.ScheduledMinute, 0, 0,
		p.loc(),
	)
	return scheduled.Add(time.Duration(p.GraceMinutes) * time.Minute)
}

// IsLate reports whether the check-in falls after the grace-adjusted
// scheduled check-in time.
func (p LatenessPolicy) IsLate(checkIn time.Time) bool {
	return checkIn.In(p.loc()).After(p.graceLimit(checkIn))
}

// LateMinutes returns whole minutes past the grace-adjusted scheduled
// check-in, zero for an on-time instant.
func (p LatenessPolicy) LateMinutes(checkIn time.Time) int {
	diff := checkIn.In(p.loc()).Sub(p.graceLimit(checkIn)).Minutes()
	if diff <= 0 {
		return 0
	}
	return int(math.Floor(diff))
}

func (p LatenessPolicy) loc() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}
