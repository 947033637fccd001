package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// GetWorkTime implements settings.SettingsService.
func (s *SettingsServiceImpl) GetWorkTime(ctx context.Context) (settings.WorkTimeResponse, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.WorkTimeResponse{}, fmt.Errorf("failed to get work time settings: %w", err)
	}
	return toResponse(cfg), nil
}

// UpdateWorkTime implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateWorkTime(ctx context.Context, req settings.UpdateWorkTimeRequest) (settings.WorkTimeResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.WorkTimeResponse{}, err
	}

	cfg := settings.WorkTimeConfig{
		CheckInHour:         req.CheckInHour,
		CheckInMinute:       req.CheckInMinute,
		CheckOutHour:        req.CheckOutHour,
		CheckOutMinute:      req.CheckOutMinute,
		LateGraceMinutes:    req.LateGraceMinutes,
		MinOTMinutes:        req.MinOTMinutes,
		OTMultiplier:        req.OTMultiplier,
		OTMultiplierHoliday: req.OTMultiplierHoliday,
		WeeklyHolidays:      settings.WeeklyHolidays(req.WeeklyHolidays),
		LateDeductionType:   req.LateDeductionType,
		LateDeductionRate:   req.LateDeductionRate,
		RequirePhoto:        req.RequirePhoto,
		EnableDailyReport:   req.EnableDailyReport,
		AdminLineGroupID:    req.AdminLineGroupID,
	}
	if cfg.LateDeductionType == "" {
		cfg.LateDeductionType = "none"
	}

	stored, err := s.settingsRepo.Upsert(ctx, cfg)
	if err != nil {
		return settings.WorkTimeResponse{}, fmt.Errorf("failed to update work time settings: %w", err)
	}

	return toResponse(stored), nil
}

func toResponse(cfg settings.WorkTimeConfig) settings.WorkTimeResponse {
	return settings.WorkTimeResponse{
		CheckInHour:         cfg.CheckInHour,
		CheckInMinute:       cfg.CheckInMinute,
		CheckOutHour:        cfg.CheckOutHour,
		CheckOutMinute:      cfg.CheckOutMinute,
		LateGraceMinutes:    cfg.LateGraceMinutes,
		MinOTMinutes:        cfg.MinOTMinutes,
		OTMultiplier:        cfg.OTMultiplier,
		OTMultiplierHoliday: cfg.OTMultiplierHoliday,
		WeeklyHolidays:      []int(cfg.WeeklyHolidays),
		LateDeductionType:   cfg.LateDeductionType,
		LateDeductionRate:   cfg.LateDeductionRate,
		RequirePhoto:        cfg.RequirePhoto,
		EnableDailyReport:   cfg.EnableDailyReport,
		AdminLineGroupID:    cfg.AdminLineGroupID,
		UpdatedAt:           cfg.UpdatedAt.Format(time.RFC3339),
	}
}
