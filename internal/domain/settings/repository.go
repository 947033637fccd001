package settings

import "context"

// SettingsRepository defines the interface for system configuration access
type SettingsRepository interface {
	// Get returns the persisted configuration, or the defaults when no row
	// exists yet
	Get(ctx context.Context) (WorkTimeConfig, error)

	// Upsert stores the configuration, creating the row when missing
	Upsert(ctx context.Context, cfg WorkTimeConfig) (WorkTimeConfig, error)
}
