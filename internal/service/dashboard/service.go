package dashboard

import (
	"context"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{dashboardRepo: repo}
}

// GetStats implements dashboard.DashboardService. "Today" is computed once
// and shared by the three counts; an employee with no mark today appears in
// neither the present nor the absent count.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.DashboardStats, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var stats dashboard.DashboardStats

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.dashboardRepo.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		stats.TotalEmployees = total
		return nil
	})

	g.Go(func() error {
		present, err := s.dashboardRepo.CountAttendanceByStatus(gCtx, attendance.StatusPresent, today)
		if err != nil {
			return err
		}
		stats.PresentToday = present
		return nil
	})

	g.Go(func() error {
		absent, err := s.dashboardRepo.CountAttendanceByStatus(gCtx, attendance.StatusAbsent, today)
		if err != nil {
			return err
		}
		stats.AbsentToday = absent
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardStats{}, err
	}

	return stats, nil
}
