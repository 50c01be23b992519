package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/policy"
	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// UpdateItem applies a partial update to an item. Changing the department is
// a transfer: the caller also needs access to the destination, both
// departments' counters move by one item, and the audit action becomes
// "transferred" with the destination's name in the snapshot.
func (s *Service) UpdateItem(ctx context.Context, itemID uuid.UUID, input UpdateItemInput) (*domain.InventoryItem, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	// Membership is checked against the item's current department, not the
	// destination.
	if err := policy.CanUpdateItem(id, item); err != nil {
		return nil, err
	}

	params := input.Params
	sourceDeptID := item.DepartmentID
	transfer := params.DepartmentID != nil && *params.DepartmentID != sourceDeptID

	var destDept *domain.Department
	if transfer {
		destDept, err = s.departments.GetByID(ctx, *params.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("get destination department: %w", err)
		}
		if err := policy.CanCreateItem(id, destDept); err != nil {
			return nil, err
		}
	}

	var updated *domain.InventoryItem
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		merged := *item
		applyParams(&merged, params)
		merged.UpdatedBy = id.UserID

		var updateErr error
		updated, updateErr = s.items.Update(txCtx, &merged)
		if updateErr != nil {
			return fmt.Errorf("update item: %w", updateErr)
		}

		action := domain.ActivityUpdated
		deptName := s.departmentName(txCtx, updated.DepartmentID)
		if transfer {
			s.adjustCounters(txCtx, sourceDeptID, -1)
			s.adjustCounters(txCtx, destDept.ID, +1)
			action = domain.ActivityTransferred
			deptName = destDept.Name
		}

		if err := s.record(txCtx, action, updated, deptName, id); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if transfer {
		s.log.InfoContext(ctx, "item transferred",
			slog.String("item_id", updated.ID.String()),
			slog.String("from_department_id", sourceDeptID.String()),
			slog.String("to_department_id", destDept.ID.String()),
		)
	}

	return updated, nil
}

// applyParams merges the non-nil fields into the item. The asset id is
// immutable and deliberately absent here.
func applyParams(item *domain.InventoryItem, p domain.ItemUpdateParams) {
	if p.Name != nil {
		item.Name = domain.NormalizeName(*p.Name)
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		item.UnitPrice = p.UnitPrice
	}
	if p.Location != nil {
		item.Location = p.Location
	}
	if p.PurchaseDate != nil {
		item.PurchaseDate = p.PurchaseDate
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.DepartmentID != nil {
		item.DepartmentID = *p.DepartmentID
	}
	if p.CustomValues != nil {
		item.CustomValues = p.CustomValues
	}
}
