package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/policy"
	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// CreateItem creates an item in the target department. The asset id is
// issued from the company's pattern by an atomic counter claim inside the
// same transaction as the insert, so concurrent creations never share an id
// and a rolled-back attempt never leaves a committed item with a reused
// number (gaps are fine).
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.InventoryItem, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.departments.GetByID(ctx, input.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("get department: %w", err)
	}
	if err := policy.CanCreateItem(id, dept); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ItemStatusActive
	}

	var created *domain.InventoryItem
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		number, pattern, err := s.companies.NextAssetNumber(txCtx, id.CompanyID)
		if err != nil {
			return fmt.Errorf("claim asset number: %w", err)
		}

		created, err = s.items.Create(txCtx, &domain.InventoryItem{
			CompanyID:    id.CompanyID,
			DepartmentID: dept.ID,
			AssetID:      domain.RenderAssetID(pattern, number),
			Name:         domain.NormalizeName(input.Name),
			Quantity:     input.Quantity,
			UnitPrice:    input.UnitPrice,
			Location:     input.Location,
			PurchaseDate: input.PurchaseDate,
			Status:       status,
			CustomValues: input.CustomValues,
			CreatedBy:    id.UserID,
			UpdatedBy:    id.UserID,
		})
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		s.adjustCounters(txCtx, dept.ID, +1)

		if err := s.record(txCtx, domain.ActivityAdded, created, dept.Name, id); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("item_id", created.ID.String()),
		slog.String("asset_id", created.AssetID),
		slog.String("department_id", dept.ID.String()),
	)

	return created, nil
}
