package settings

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// WorkTimeConfig is the single persisted system configuration row. The
// analytics engine reads the check-in schedule and grace period from it on
// every report invocation.
type WorkTimeConfig struct {
	CheckInHour      int
	CheckInMinute    int
	CheckOutHour     int
	CheckOutMinute   int
	LateGraceMinutes int
	MinOTMinutes     int

	// Payroll-facing knobs, persisted here but not consumed by reporting
	OTMultiplier        float64
	OTMultiplierHoliday float64
	WeeklyHolidays      WeeklyHolidays
	CustomHolidays      CustomHolidays
	LateDeductionType   string
	LateDeductionRate   float64

	RequirePhoto      bool
	EnableDailyReport bool
	AdminLineGroupID  *string

	UpdatedAt time.Time
}

// DefaultWorkTimeConfig matches a 09:00 check-in with a 15 minute grace
// period, used when no configuration row exists yet.
func DefaultWorkTimeConfig() WorkTimeConfig {
	return WorkTimeConfig{
		CheckInHour:         9,
		CheckInMinute:       0,
		CheckOutHour:        18,
		CheckOutMinute:      0,
		LateGraceMinutes:    15,
		MinOTMinutes:        30,
		OTMultiplier:        1.5,
		OTMultiplierHoliday: 3.0,
		WeeklyHolidays:      WeeklyHolidays{0, 6},
		LateDeductionType:   "none",
	}
}

// CustomHoliday is a dated holiday with its own OT rate.
type CustomHoliday struct {
	Date         time.Time `json:"date"`
	Name         string    `json:"name"`
	OTMultiplier float64   `json:"ot_multiplier"`
}

// CustomHolidays is stored as JSONB.
type CustomHolidays []CustomHoliday

// Value implements driver.Valuer for database storage
func (h CustomHolidays) Value() (driver.Value, error) {
	if len(h) == 0 {
		return nil, nil
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner for database retrieval
func (h *CustomHolidays) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CustomHolidays: invalid type")
	}

	return json.Unmarshal(bytes, h)
}

// WeeklyHolidays holds weekdays treated as holidays (0=Sunday, 6=Saturday),
// stored as JSONB.
type WeeklyHolidays []int

// Value implements driver.Valuer for database storage
func (w WeeklyHolidays) Value() (driver.Value, error) {
	if len(w) == 0 {
		return nil, nil
	}
	return json.Marshal(w)
}

// Scan implements sql.Scanner for database retrieval
func (w *WeeklyHolidays) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan WeeklyHolidays: invalid type")
	}

	return json.Unmarshal(bytes, w)
}
