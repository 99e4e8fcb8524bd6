package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
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

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
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

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                 att.ID,
		EmployeeID:         att.EmployeeID,
		Date:               att.Date.Format("2006-01-02"),
		Status:             string(att.Status),
		CreatedAt:          att.CreatedAt.UTC().Format(time.RFC3339),
		EmployeeName:       att.EmployeeName,
		EmployeeCode:       att.EmployeeCode,
		EmployeeDepartment: att.EmployeeDepartment,
	}
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID int64, skip, limit int) ([]attendance.AttendanceResponse, error) {
	skip, limit = normalizePagination(skip, limit)

	exists, err := s.employeeRepo.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return nil, employee.ErrEmployeeNotFound
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return responses, nil
}

// MarkAttendance implements attendance.AttendanceService. Existence check,
// duplicate-date check, and insert run in one transaction; the
// (employee_id, date) unique constraint closes the race between concurrent
// marks for the same pair.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	var created attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.employeeRepo.ExistsByID(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to check employee existence: %w", err)
		}
		if !exists {
			return employee.ErrEmployeeNotFound
		}

		existing, err := s.attendanceRepo.GetByEmployeeAndDate(txCtx, req.EmployeeID, date)
		if err != nil {
			return fmt.Errorf("failed to check existing attendance: %w", err)
		}
		if existing != nil {
			return &attendance.AlreadyMarkedError{EmployeeID: req.EmployeeID, Date: date}
		}

		created, err = s.attendanceRepo.Create(txCtx, attendance.Attendance{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Status:     attendance.Status(req.Status),
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return &attendance.AlreadyMarkedError{EmployeeID: req.EmployeeID, Date: date}
			}
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, skip, limit int) ([]attendance.AttendanceResponse, error) {
	skip, limit = normalizePagination(skip, limit)

	records, err := s.attendanceRepo.ListAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return responses, nil
}
