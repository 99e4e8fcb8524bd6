package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, nil
}

// CountAttendanceByStatus implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAttendanceByStatus(ctx context.Context, status attendance.Status, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance
		WHERE status = $1 AND date = $2
	`

	var count int64
	err := q.QueryRow(ctx, query, status, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s attendance on %s: %w",
			status, date.Format("2006-01-02"), err)
	}

	return count, nil
}
