package auth

import (
	"context"
	"time"
)

// AdminRepository defines the interface for admin account access
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (Admin, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
