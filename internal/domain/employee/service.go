package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees with offset/limit pagination
	ListEmployees(ctx context.Context, skip, limit int) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by internal ID
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// CreateEmployee creates a new employee after duplicate checks
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and all its attendance records
	DeleteEmployee(ctx context.Context, id int64) error
}
