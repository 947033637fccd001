package employee

import (
	"time"
)

type Employee struct {
	ID             string
	EmployeeCode   string
	FullName       string
	Email          string
	PhoneNumber    string
	EmploymentType EmploymentType
	Position       string
	Department     *string
	RegisteredDate time.Time
	Status         EmploymentStatus
	EndDate        *time.Time
	LineUserID     *string
	AvatarURL      *string

	// Annual leave quota in days, per leave type
	PersonalLeaveQuota int
	SickLeaveQuota     int
	VacationLeaveQuota int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EmploymentType string

const (
	EmploymentTypeMonthly   EmploymentType = "monthly"
	EmploymentTypeDaily     EmploymentType = "daily"
	EmploymentTypeTemporary EmploymentType = "temporary"
)

type EmploymentStatus string

const (
	EmploymentStatusWorking    EmploymentStatus = "working"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
