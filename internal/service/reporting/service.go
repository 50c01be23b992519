// Package reporting implements the read-only surfaces built on top of the
// inventory data: the activity feed and the dashboard summary.
package reporting

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/config"
	"github.com/akulikova/stockroom-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type activityRepo interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.ActivityLog, error)
}

type itemRepo interface {
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error)
	CountCreatedSince(ctx context.Context, companyID uuid.UUID, since time.Time) (int, error)
	CountByStatus(ctx context.Context, companyID uuid.UUID, status domain.ItemStatus) (int, error)
}

type departmentRepo interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Department, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the reporting queries.
type Service struct {
	log         *slog.Logger
	activity    activityRepo
	items       itemRepo
	departments departmentRepo
	cfg         config.InventoryConfig
}

// NewService creates a new Reporting service.
func NewService(
	logger *slog.Logger,
	activity activityRepo,
	items itemRepo,
	departments departmentRepo,
	cfg config.InventoryConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "reporting"),
		activity:    activity,
		items:       items,
		departments: departments,
		cfg:         cfg,
	}
}

// clampLimit ensures a limit is within (0, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
