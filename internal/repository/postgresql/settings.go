package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worktime-th/analytics-backend-go/internal/domain/settings"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

// Get implements settings.SettingsRepository. The configuration lives in a
// single row keyed by id = 1; the defaults are returned when it is missing.
func (r *settingsRepository) Get(ctx context.Context) (settings.WorkTimeConfig, error) {
	query := `
		SELECT check_in_hour, check_in_minute, check_out_hour, check_out_minute,
			   late_grace_minutes, min_ot_minutes,
			   ot_multiplier, ot_multiplier_holiday, weekly_holidays, custom_holidays,
			   late_deduction_type, late_deduction_rate,
			   require_photo, enable_daily_report, admin_line_group_id,
			   updated_at
		FROM work_time_settings
		WHERE id = 1
	`

	var cfg settings.WorkTimeConfig
	err := r.db.QueryRow(ctx, query).Scan(
		&cfg.CheckInHour, &cfg.CheckInMinute, &cfg.CheckOutHour, &cfg.CheckOutMinute,
		&cfg.LateGraceMinutes, &cfg.MinOTMinutes,
		&cfg.OTMultiplier, &cfg.OTMultiplierHoliday, &cfg.WeeklyHolidays, &cfg.CustomHolidays,
		&cfg.LateDeductionType, &cfg.LateDeductionRate,
		&cfg.RequirePhoto, &cfg.EnableDailyReport, &cfg.AdminLineGroupID,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.DefaultWorkTimeConfig(), nil
		}
		return settings.WorkTimeConfig{}, fmt.Errorf("failed to get work time settings: %w", err)
	}

	return cfg, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, cfg settings.WorkTimeConfig) (settings.WorkTimeConfig, error) {
	query := `
		INSERT INTO work_time_settings (
			id, check_in_hour, check_in_minute, check_out_hour, check_out_minute,
			late_grace_minutes, min_ot_minutes,
			ot_multiplier, ot_multiplier_holiday, weekly_holidays, custom_holidays,
			late_deduction_type, late_deduction_rate,
			require_photo, enable_daily_report, admin_line_group_id,
			updated_at
		) VALUES (
			1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW()
		)
		ON CONFLICT (id) DO UPDATE SET
			check_in_hour = EXCLUDED.check_in_hour,
			check_in_minute = EXCLUDED.check_in_minute,
			check_out_hour = EXCLUDED.check_out_hour,
			check_out_minute = EXCLUDED.check_out_minute,
			late_grace_minutes = EXCLUDED.late_grace_minutes,
			min_ot_minutes = EXCLUDED.min_ot_minutes,
			ot_multiplier = EXCLUDED.ot_multiplier,
			ot_multiplier_holiday = EXCLUDED.ot_multiplier_holiday,
			weekly_holidays = EXCLUDED.weekly_holidays,
			custom_holidays = EXCLUDED.custom_holidays,
			late_deduction_type = EXCLUDED.late_deduction_type,
			late_deduction_rate = EXCLUDED.late_deduction_rate,
			require_photo = EXCLUDED.require_photo,
			enable_daily_report = EXCLUDED.enable_daily_report,
			admin_line_group_id = EXCLUDED.admin_line_group_id,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		cfg.CheckInHour, cfg.CheckInMinute, cfg.CheckOutHour, cfg.CheckOutMinute,
		cfg.LateGraceMinutes, cfg.MinOTMinutes,
		cfg.OTMultiplier, cfg.OTMultiplierHoliday, cfg.WeeklyHolidays, cfg.CustomHolidays,
		cfg.LateDeductionType, cfg.LateDeductionRate,
		cfg.RequirePhoto, cfg.EnableDailyReport, cfg.AdminLineGroupID,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return settings.WorkTimeConfig{}, fmt.Errorf("failed to upsert work time settings: %w", err)
	}

	return cfg, nil
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}
