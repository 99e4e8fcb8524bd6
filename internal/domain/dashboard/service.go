package dashboard

import (
	"context"
)

type DashboardService interface {
	// GetStats returns today's headline counts. "Today" is taken once per
	// call so the three counts agree on the date.
	GetStats(ctx context.Context) (DashboardStats, error)
}
