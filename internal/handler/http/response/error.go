package response

import (
	"errors"
	"net/http"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/auth"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Analytics domain errors
	case errors.Is(err, analytics.ErrInvalidDateRange):
		BadRequest(w, "end_date must not be before start_date", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrLineAccountNotLinked):
		Forbidden(w, "LINE account is not linked to an employee")
	case errors.Is(err, auth.ErrLineLoginNotConfigured):
		NotFound(w, "LINE login is not configured")
	case errors.Is(err, auth.ErrAdminNotFound):
		NotFound(w, "Admin not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
