package auth

import "context"

// AuthService defines the interface for admin and employee sign-in
type AuthService interface {
	// Login authenticates an admin with email and password
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Logout revokes the presented access token
	Logout(ctx context.Context, token string) error

	// LineRedirectURL starts the LINE authorization-code flow
	LineRedirectURL(userAgent string) (string, error)

	// LineCallback exchanges the code and signs in the linked employee
	LineCallback(ctx context.Context, code string) (LineLoginResponse, error)
}
