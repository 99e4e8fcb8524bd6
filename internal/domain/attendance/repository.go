package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for a specific employee on a
	// specific date. Used to prevent double marking; nil, nil when absent.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)

	// ListByEmployee retrieves an employee's records, most recent date first
	ListByEmployee(ctx context.Context, employeeID int64, skip, limit int) ([]Attendance, error)

	// ListAll retrieves all records joined with employee details,
	// most recent date first
	ListAll(ctx context.Context, skip, limit int) ([]Attendance, error)
}
