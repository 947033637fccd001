package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/auth"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/jwt"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo    auth.AdminRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	lineService  oauth.LineService
}

func NewAuthService(
	adminRepo auth.AdminRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	lineService oauth.LineService,
) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		lineService:  lineService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	admin, err := a.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	var resp auth.LoginResponse
	resp.AccessToken, resp.ExpiresAt, err = a.jwtService.GenerateAdminToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.RefreshToken, resp.RefreshExp, err = a.jwtService.GenerateRefreshToken(admin.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	resp.Name = admin.Name
	resp.Email = admin.Email
	resp.Role = string(admin.Role)

	if err := a.adminRepo.UpdateLastLogin(ctx, admin.ID, time.Now()); err != nil {
		// last-login is informational only; sign-in already succeeded
		return resp, nil
	}

	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	a.jwtService.RevokeToken(token)
	return nil
}

// LineRedirectURL implements auth.AuthService.
func (a *AuthServiceImpl) LineRedirectURL(userAgent string) (string, error) {
	if a.lineService == nil {
		return "", auth.ErrLineLoginNotConfigured
	}
	state := a.lineService.GenerateState(userAgent)
	return a.lineService.RedirectURL(state), nil
}

// LineCallback implements auth.AuthService. The LINE account must already be
// linked to an employee row; there is no self-service account creation.
func (a *AuthServiceImpl) LineCallback(ctx context.Context, code string) (auth.LineLoginResponse, error) {
	if a.lineService == nil {
		return auth.LineLoginResponse{}, auth.ErrLineLoginNotConfigured
	}

	token, err := a.lineService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LineLoginResponse{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	info, err := a.lineService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LineLoginResponse{}, fmt.Errorf("failed to fetch line profile: %w", err)
	}

	emp, err := a.employeeRepo.GetByLineUserID(ctx, info.LineUserID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LineLoginResponse{}, auth.ErrLineAccountNotLinked
		}
		return auth.LineLoginResponse{}, fmt.Errorf("failed to get employee by line user id: %w", err)
	}

	var resp auth.LineLoginResponse
	resp.AccessToken, resp.ExpiresAt, err = a.jwtService.GenerateEmployeeToken(emp.ID, emp.FullName)
	if err != nil {
		return auth.LineLoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.EmployeeID = emp.ID
	resp.EmployeeName = emp.FullName

	return resp, nil
}
