package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/policy"
	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// GetItem returns one item after the tenant and membership checks.
func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if err := policy.CanViewItem(id, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns the caller's visible items, optionally narrowed by
// department and status. Employees only ever see items in their membership
// departments; with an explicit department filter the membership check runs
// up front so the denial reason is accurate.
func (s *Service) ListItems(ctx context.Context, filter domain.ItemFilter) ([]*domain.InventoryItem, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if filter.DepartmentID != nil {
		dept, err := s.departments.GetByID(ctx, *filter.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("get department: %w", err)
		}
		if err := policy.CanViewDepartment(id, dept); err != nil {
			return nil, err
		}
	}

	items, err := s.items.List(ctx, id.CompanyID, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if id.IsAdmin() {
		return items, nil
	}

	visible := make([]*domain.InventoryItem, 0, len(items))
	for _, it := range items {
		if id.HasDepartment(it.DepartmentID) {
			visible = append(visible, it)
		}
	}
	return visible, nil
}
