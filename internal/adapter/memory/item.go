package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// ItemRepo is the in-memory inventory item repository.
type ItemRepo struct {
	s *Store
}

// Create inserts a new item. The asset id must be issued by the caller; a
// duplicate within the company maps to domain.ErrConflict, matching the
// unique index on (company_id, asset_id).
func (r *ItemRepo) Create(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
	defer r.s.enter(ctx)()

	for _, existing := range r.s.items {
		if existing.CompanyID == it.CompanyID && existing.AssetID == it.AssetID {
			return nil, fmt.Errorf("asset id %q: %w", it.AssetID, domain.ErrConflict)
		}
	}

	created := *it
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	created.CustomValues = copyValues(it.CustomValues)

	r.s.items[created.ID] = created

	out := created
	return &out, nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	defer r.s.enter(ctx)()

	it, ok := r.s.items[id]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	it.CustomValues = copyValues(it.CustomValues)
	return &it, nil
}

// Update stores the full merged row the caller assembled.
func (r *ItemRepo) Update(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
	defer r.s.enter(ctx)()

	if _, ok := r.s.items[it.ID]; !ok {
		return nil, fmt.Errorf("item %s: %w", it.ID, domain.ErrNotFound)
	}

	updated := *it
	updated.UpdatedAt = time.Now().UTC()
	updated.CustomValues = copyValues(it.CustomValues)

	r.s.items[updated.ID] = updated

	out := updated
	return &out, nil
}

func (r *ItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.enter(ctx)()

	if _, ok := r.s.items[id]; !ok {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	delete(r.s.items, id)
	return nil
}

// List returns the company's items newest first, optionally narrowed by
// department and status.
func (r *ItemRepo) List(ctx context.Context, companyID uuid.UUID, filter domain.ItemFilter) ([]*domain.InventoryItem, error) {
	defer r.s.enter(ctx)()

	result := []*domain.InventoryItem{}
	for _, it := range r.s.items {
		if it.CompanyID != companyID {
			continue
		}
		if filter.DepartmentID != nil && it.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.Status != nil && it.Status != *filter.Status {
			continue
		}
		cp := it
		cp.CustomValues = copyValues(it.CustomValues)
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() > result[j].ID.String()
	})

	return result, nil
}

func (r *ItemRepo) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	defer r.s.enter(ctx)()

	n := 0
	for _, it := range r.s.items {
		if it.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (r *ItemRepo) CountCreatedSince(ctx context.Context, companyID uuid.UUID, since time.Time) (int, error) {
	defer r.s.enter(ctx)()

	n := 0
	for _, it := range r.s.items {
		if it.CompanyID == companyID && !it.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *ItemRepo) CountByStatus(ctx context.Context, companyID uuid.UUID, status domain.ItemStatus) (int, error) {
	defer r.s.enter(ctx)()

	n := 0
	for _, it := range r.s.items {
		if it.CompanyID == companyID && it.Status == status {
			n++
		}
	}
	return n, nil
}

// CountByDepartment recounts the items actually present in the department.
// Callers derive capacity from the count with their configured unit.
func (r *ItemRepo) CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int, error) {
	defer r.s.enter(ctx)()

	n := 0
	for _, it := range r.s.items {
		if it.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}

func copyValues(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
