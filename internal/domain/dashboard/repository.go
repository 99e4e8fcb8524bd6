package dashboard

import (
	"context"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
)

type DashboardRepository interface {
	// CountEmployees returns the total number of employee rows
	CountEmployees(ctx context.Context) (int64, error)

	// CountAttendanceByStatus counts attendance rows with the given status on
	// the given calendar date
	CountAttendanceByStatus(ctx context.Context, status attendance.Status, date time.Time) (int64, error)
}
