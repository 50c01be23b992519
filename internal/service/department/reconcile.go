package department

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/policy"
	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// Reconcile recomputes a department's item count and capacity-used from the
// live items and overwrites the cached counters. The counters can drift
// because accounting is skipped when a department row is missing mid-flight;
// this is the repair path for that drift. Admin only.
func (s *Service) Reconcile(ctx context.Context, departmentID uuid.UUID) (*domain.Department, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Department
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		dept, err := s.departments.GetByID(txCtx, departmentID)
		if err != nil {
			return fmt.Errorf("get department: %w", err)
		}
		if err := policy.CanManageDepartment(id, dept); err != nil {
			return err
		}

		itemCount, err := s.items.CountByDepartment(txCtx, departmentID)
		if err != nil {
			return fmt.Errorf("recount items: %w", err)
		}
		// The same configured unit the live accounting charges per item, so
		// a repair never disagrees with CreateItem/DeleteItem arithmetic.
		capacityUsed := itemCount * s.cfg.CapacityUnitPerItem

		updated, err = s.departments.SetCounters(txCtx, departmentID, itemCount, capacityUsed)
		if err != nil {
			return fmt.Errorf("set counters: %w", err)
		}

		if dept.ItemCount != itemCount || dept.CapacityUsed != capacityUsed {
			s.log.InfoContext(txCtx, "department counters repaired",
				slog.String("department_id", departmentID.String()),
				slog.Int("item_count_was", dept.ItemCount),
				slog.Int("item_count_now", itemCount),
				slog.Int("capacity_was", dept.CapacityUsed),
				slog.Int("capacity_now", capacityUsed),
			)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return updated, nil
}
