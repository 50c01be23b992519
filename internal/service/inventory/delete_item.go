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

// DeleteItem removes an item permanently. Admin only. The audit snapshot is
// taken before the row disappears.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if err := policy.CanDeleteItem(id, item); err != nil {
		return err
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deptName := s.departmentName(txCtx, item.DepartmentID)

		if err := s.items.Delete(txCtx, itemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		s.adjustCounters(txCtx, item.DepartmentID, -1)

		if err := s.record(txCtx, domain.ActivityRemoved, item, deptName, id); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("item_id", itemID.String()),
		slog.String("asset_id", item.AssetID),
	)

	return nil
}
