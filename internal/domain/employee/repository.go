package employee

import "context"

// EmployeeRepository defines the interface for employee roster access
type EmployeeRepository interface {
	// ListAll returns the full roster snapshot
	ListAll(ctx context.Context) ([]Employee, error)

	// GetByID returns a single employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByLineUserID returns the employee linked to a LINE account
	GetByLineUserID(ctx context.Context, lineUserID string) (Employee, error)
}
