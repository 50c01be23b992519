package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// DashboardSummary is the aggregate view for the company landing page.
type DashboardSummary struct {
	TotalItems      int
	ItemsThisMonth  int
	LowStockItems   int
	DepartmentCount int
	RecentActivity  []domain.ActivityLog
	Departments     []domain.DepartmentStats
}

// GetDashboardSummary aggregates the company's inventory state: totals,
// items created this calendar month, low-stock count, department counters
// and the most recent activity entries.
func (s *Service) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	total, err := s.items.CountByCompany(ctx, id.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	thisMonth, err := s.items.CountCreatedSince(ctx, id.CompanyID, startOfMonth(time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("count monthly items: %w", err)
	}

	low, err := s.items.CountByStatus(ctx, id.CompanyID, domain.ItemStatusLow)
	if err != nil {
		return nil, fmt.Errorf("count low items: %w", err)
	}

	departments, err := s.departments.ListByCompany(ctx, id.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	recent, err := s.activity.ListByCompany(ctx, id.CompanyID, s.cfg.DashboardRecentActivities)
	if err != nil {
		return nil, fmt.Errorf("list recent activity: %w", err)
	}

	stats := make([]domain.DepartmentStats, 0, len(departments))
	for _, d := range departments {
		stats = append(stats, domain.DepartmentStats{
			DepartmentID:   d.ID,
			DepartmentName: d.Name,
			ItemCount:      d.ItemCount,
			CapacityUsed:   d.CapacityUsed,
		})
	}

	return &DashboardSummary{
		TotalItems:      total,
		ItemsThisMonth:  thisMonth,
		LowStockItems:   low,
		DepartmentCount: len(departments),
		RecentActivity:  recent,
		Departments:     stats,
	}, nil
}

// startOfMonth truncates t to midnight on the first of its month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
