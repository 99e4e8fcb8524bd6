package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, date, status, created_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query, att.EmployeeID, att.Date, att.Status).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendance
		WHERE employee_id = $1 AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %d on %s: %w",
			employeeID, date.Format("2006-01-02"), err)
	}

	return &att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64, skip, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendance
		WHERE employee_id = $1
		ORDER BY date DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := q.Query(ctx, query, employeeID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListAll implements attendance.AttendanceRepository. Joins employee details
// for display.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context, skip, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at,
			e.full_name, e.employee_id, e.department
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		ORDER BY a.date DESC, a.id DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := q.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt,
			&att.EmployeeName, &att.EmployeeCode, &att.EmployeeDepartment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
