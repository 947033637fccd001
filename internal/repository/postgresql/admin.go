package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worktime-th/analytics-backend-go/internal/domain/auth"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

// GetByEmail implements auth.AdminRepository.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (auth.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, role, created_at, last_login
		FROM admins
		WHERE email = $1
	`

	var admin auth.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(
		&admin.ID, &admin.Email, &admin.Name, &admin.PasswordHash, &admin.Role,
		&admin.CreatedAt, &admin.LastLogin,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Admin{}, auth.ErrAdminNotFound
		}
		return auth.Admin{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}

// UpdateLastLogin implements auth.AdminRepository.
func (r *adminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE admins
		SET last_login = $2
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepository{db: db}
}
