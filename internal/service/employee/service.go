package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
	"github.com/hrms-lite/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	defaultLimit = 100
	maxLimit     = 200
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

func normalizePagination(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
		HireDate:   emp.HireDate.Format("2006-01-02"),
		CreatedAt:  emp.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, skip, limit int) ([]employee.EmployeeResponse, error) {
	skip, limit = normalizePagination(skip, limit)

	employees, err := s.employeeRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService. The duplicate
// pre-checks and the insert run in one transaction; the unique constraints
// on employee_id and email remain the guard under concurrent writers.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.employeeRepo.GetByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to check employee code: %w", err)
		}
		if existing != nil {
			return &employee.DuplicateError{Field: "employee_id", Value: req.EmployeeID}
		}

		existing, err = s.employeeRepo.GetByEmail(txCtx, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return &employee.DuplicateError{Field: "email", Value: req.Email}
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeID: req.EmployeeID,
			FullName:   req.FullName,
			Email:      req.Email,
			Department: req.Department,
			HireDate:   hireDate,
		})
		if err != nil {
			// A concurrent writer can slip past the pre-checks; the unique
			// constraint still rejects the row.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				if pgErr.ConstraintName == "employees_email_key" {
					return &employee.DuplicateError{Field: "email", Value: req.Email}
				}
				return &employee.DuplicateError{Field: "employee_id", Value: req.EmployeeID}
			}
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// DeleteEmployee implements employee.EmployeeService. The cascading foreign
// key removes the employee's attendance rows in the same atomic statement.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}
