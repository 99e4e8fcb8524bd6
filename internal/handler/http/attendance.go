package http

import (
	"encoding/json"
	"net/http"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// GetEmployeeAttendance handles GET /attendance/employee/{employeeID}
func (h *attendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := parseIDParam(r, "employeeID")
	if !ok {
		response.ValidationError(w, map[string]string{"employee_id": "must be a positive integer"})
		return
	}

	skip, limit := parsePagination(r)

	results, err := h.attendanceService.GetEmployeeAttendance(r.Context(), employeeID, skip, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MarkAttendance handles POST /attendance
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationError(w, map[string]string{"body": "invalid request body"})
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked successfully", result)
}

// ListAttendance handles GET /attendance
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	results, err := h.attendanceService.ListAttendance(r.Context(), skip, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
