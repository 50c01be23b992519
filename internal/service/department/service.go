// Package department implements department management and counter repair.
package department

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/config"
	"github.com/akulikova/stockroom-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type departmentRepo interface {
	Create(ctx context.Context, d *domain.Department) (*domain.Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Department, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Department, error)
	SetCounters(ctx context.Context, id uuid.UUID, itemCount, capacityUsed int) (*domain.Department, error)
}

type itemRepo interface {
	CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the department business logic.
type Service struct {
	log         *slog.Logger
	departments departmentRepo
	items       itemRepo
	tx          txManager
	cfg         config.InventoryConfig
}

// NewService creates a new Department service.
func NewService(logger *slog.Logger, departments departmentRepo, items itemRepo, tx txManager, cfg config.InventoryConfig) *Service {
	return &Service{
		log:         logger.With("service", "department"),
		departments: departments,
		items:       items,
		tx:          tx,
		cfg:         cfg,
	}
}
