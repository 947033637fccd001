package settings

import (
	"github.com/worktime-th/analytics-backend-go/internal/pkg/validator"
)

type UpdateWorkTimeRequest struct {
	CheckInHour      int `json:"check_in_hour"`
	CheckInMinute    int `json:"check_in_minute"`
	CheckOutHour     int `json:"check_out_hour"`
	CheckOutMinute   int `json:"check_out_minute"`
	LateGraceMinutes int `json:"late_grace_minutes"`
	MinOTMinutes     int `json:"min_ot_minutes"`

	OTMultiplier        float64 `json:"ot_multiplier"`
	OTMultiplierHoliday float64 `json:"ot_multiplier_holiday"`
	WeeklyHolidays      []int   `json:"weekly_holidays"`
	LateDeductionType   string  `json:"late_deduction_type"`
	LateDeductionRate   float64 `json:"late_deduction_rate"`

	RequirePhoto      bool    `json:"require_photo"`
	EnableDailyReport bool    `json:"enable_daily_report"`
	AdminLineGroupID  *string `json:"admin_line_group_id"`
}

func (r *UpdateWorkTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClockTime(r.CheckInHour, r.CheckInMinute) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check-in time must be a valid time of day",
		})
	}

	if !validator.IsValidClockTime(r.CheckOutHour, r.CheckOutMinute) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check-out time must be a valid time of day",
		})
	}

	if r.LateGraceMinutes < 0 || r.LateGraceMinutes > 120 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_grace_minutes",
			Message: "late_grace_minutes must be between 0 and 120",
		})
	}

	if r.MinOTMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_ot_minutes",
			Message: "min_ot_minutes must not be negative",
		})
	}

	if r.OTMultiplier < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "ot_multiplier",
			Message: "ot_multiplier must be at least 1",
		})
	}

	for _, day := range r.WeeklyHolidays {
		if day < 0 || day > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekly_holidays",
				Message: "weekly_holidays entries must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	if r.LateDeductionType != "" && !validator.IsInSlice(r.LateDeductionType, []string{"none", "pro-rated", "fixed_per_minute"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "late_deduction_type",
			Message: "late_deduction_type must be one of none, pro-rated, fixed_per_minute",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkTimeResponse struct {
	CheckInHour      int `json:"check_in_hour"`
	CheckInMinute    int `json:"check_in_minute"`
	CheckOutHour     int `json:"check_out_hour"`
	CheckOutMinute   int `json:"check_out_minute"`
	LateGraceMinutes int `json:"late_grace_minutes"`
	MinOTMinutes     int `json:"min_ot_minutes"`

	OTMultiplier        float64 `json:"ot_multiplier"`
	OTMultiplierHoliday float64 `json:"ot_multiplier_holiday"`
	WeeklyHolidays      []int   `json:"weekly_holidays"`
	LateDeductionType   string  `json:"late_deduction_type"`
	LateDeductionRate   float64 `json:"late_deduction_rate"`

	RequirePhoto      bool    `json:"require_photo"`
	EnableDailyReport bool    `json:"enable_daily_report"`
	AdminLineGroupID  *string `json:"admin_line_group_id,omitempty"`

	UpdatedAt string `json:"updated_at"`
}
