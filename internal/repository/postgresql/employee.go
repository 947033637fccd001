package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `
	id, employee_code, full_name, email, phone_number, employment_type,
	position, department, registered_date, status, end_date,
	line_user_id, avatar_url,
	personal_leave_quota, sick_leave_quota, vacation_leave_quota,
	created_at, updated_at
`

// ListAll implements employee.EmployeeRepository.
func (r *employeeRepository) ListAll(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY employee_code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByLineUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByLineUserID(ctx context.Context, lineUserID string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE line_user_id = $1
	`

	emp, err := scanEmployee(r.db.QueryRow(ctx, query, lineUserID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by line user id: %w", err)
	}

	return emp, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.PhoneNumber, &emp.EmploymentType,
		&emp.Position, &emp.Department, &emp.RegisteredDate, &emp.Status, &emp.EndDate,
		&emp.LineUserID, &emp.AvatarURL,
		&emp.PersonalLeaveQuota, &emp.SickLeaveQuota, &emp.VacationLeaveQuota,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
