// Package inventory implements item lifecycle: creation with asset-id
// issuance, partial updates with department transfers, deletion, and the
// capacity and audit bookkeeping each of those implies.
package inventory

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

type companyRepo interface {
	NextAssetNumber(ctx context.Context, companyID uuid.UUID) (int64, string, error)
}

type departmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	AdjustCounters(ctx context.Context, id uuid.UUID, deltaItems, deltaCapacity int) error
}

type itemRepo interface {
	Create(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	Update(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, companyID uuid.UUID, filter domain.ItemFilter) ([]*domain.InventoryItem, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type activityRepo interface {
	Create(ctx context.Context, entry domain.ActivityLog) (domain.ActivityLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the inventory business logic.
type Service struct {
	log         *slog.Logger
	companies   companyRepo
	departments departmentRepo
	items       itemRepo
	users       userRepo
	activity    activityRepo
	tx          txManager
	cfg         config.InventoryConfig
}

// NewService creates a new Inventory service.
func NewService(
	logger *slog.Logger,
	companies companyRepo,
	departments departmentRepo,
	items itemRepo,
	users userRepo,
	activity activityRepo,
	tx txManager,
	cfg config.InventoryConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "inventory"),
		companies:   companies,
		departments: departments,
		items:       items,
		users:       users,
		activity:    activity,
		tx:          tx,
		cfg:         cfg,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// adjustCounters applies a capacity delta to a department, skipping with a
// warning when the department row is gone. The counters are a cache; losing
// one update must not roll back the item mutation it decorates.
func (s *Service) adjustCounters(ctx context.Context, departmentID uuid.UUID, deltaItems int) {
	err := s.departments.AdjustCounters(ctx, departmentID, deltaItems, deltaItems*s.cfg.CapacityUnitPerItem)
	if err != nil {
		s.log.WarnContext(ctx, "capacity accounting skipped",
			slog.String("department_id", departmentID.String()),
			slog.Int("delta_items", deltaItems),
			slog.String("error", err.Error()),
		)
	}
}

// actorName resolves the acting user's display name, falling back to the
// placeholder when the lookup fails. Cosmetic only.
func (s *Service) actorName(ctx context.Context, userID uuid.UUID) string {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.UnknownName
	}
	return u.Name
}

// departmentName resolves a department's display name, falling back to the
// placeholder when the lookup fails.
func (s *Service) departmentName(ctx context.Context, departmentID uuid.UUID) string {
	d, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return domain.UnknownName
	}
	return d.Name
}

// record appends one audit entry for the mutation. The snapshot fields are
// the display values at this moment; later renames never rewrite history.
// Failure here is a real error: an inventory mutation without its audit row
// must not commit.
func (s *Service) record(ctx context.Context, action domain.ActivityAction, item *domain.InventoryItem, deptName string, actor domain.Identity) error {
	_, err := s.activity.Create(ctx, domain.ActivityLog{
		CompanyID:      item.CompanyID,
		Action:         action,
		ItemID:         item.ID,
		AssetID:        item.AssetID,
		ItemName:       item.Name,
		DepartmentName: deptName,
		UserID:         actor.UserID,
		UserName:       s.actorName(ctx, actor.UserID),
	})
	return err
}
