package attendance

import (
	"strings"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// Validate checks the request shape before any store access.
func (r *MarkAttendanceRequest) Validate() error {
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)

	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID must be a positive integer"})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Present or Absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`

	// Owning-employee details, present on the joined listing only
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeCode       *string `json:"employee_code,omitempty"`
	EmployeeDepartment *string `json:"employee_department,omitempty"`
}
