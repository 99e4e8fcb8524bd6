package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors carry a field->message map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Uniqueness conflicts name the conflicting field and value
	var dupErr *employee.DuplicateError
	if errors.As(err, &dupErr) {
		Conflict(w, dupErr.Error(), map[string]string{
			"field": dupErr.Field,
			"value": dupErr.Value,
		})
		return
	}

	// Business rule: one attendance mark per employee per day
	var markedErr *attendance.AlreadyMarkedError
	if errors.As(err, &markedErr) {
		BadRequest(w, markedErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	default:
		slog.Error("unexpected error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
