package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrTokenExpired           = errors.New("token expired")
	ErrAdminNotFound          = errors.New("admin not found")
	ErrLineAccountNotLinked   = errors.New("no employee linked to this LINE account")
	ErrLineLoginNotConfigured = errors.New("LINE login is not configured")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
