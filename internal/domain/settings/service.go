package settings

import "context"

// SettingsService defines the interface for system configuration management
type SettingsService interface {
	GetWorkTime(ctx context.Context) (WorkTimeResponse, error)
	UpdateWorkTime(ctx context.Context, req UpdateWorkTimeRequest) (WorkTimeResponse, error)
}
