package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// GetEmployeeAttendance retrieves attendance records for one employee
	GetEmployeeAttendance(ctx context.Context, employeeID int64, skip, limit int) ([]AttendanceResponse, error)

	// MarkAttendance records a Present/Absent mark for one employee and date
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance retrieves all records with owning-employee details
	ListAttendance(ctx context.Context, skip, limit int) ([]AttendanceResponse, error)
}
