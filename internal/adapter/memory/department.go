package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// DepartmentRepo is the in-memory department repository.
type DepartmentRepo struct {
	s *Store
}

// Create inserts a new department with zeroed counters. Duplicate names
// within a company map to domain.ErrAlreadyExists, like the unique index in
// the postgres backend.
func (r *DepartmentRepo) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	defer r.s.enter(ctx)()

	for _, existing := range r.s.departments {
		if existing.CompanyID == d.CompanyID && existing.Name == d.Name {
			return nil, fmt.Errorf("department %q: %w", d.Name, domain.ErrAlreadyExists)
		}
	}

	created := *d
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.ItemCount = 0
	created.CapacityUsed = 0
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.s.departments[created.ID] = created
	return &created, nil
}

// GetByID returns a department by primary key; tenant scoping is the
// caller's responsibility.
func (r *DepartmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	defer r.s.enter(ctx)()

	d, ok := r.s.departments[id]
	if !ok {
		return nil, fmt.Errorf("department %s: %w", id, domain.ErrNotFound)
	}
	return &d, nil
}

// ListByCompany returns the company's departments ordered by name.
func (r *DepartmentRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Department, error) {
	defer r.s.enter(ctx)()

	result := []*domain.Department{}
	for _, d := range r.s.departments {
		if d.CompanyID == companyID {
			dd := d
			result = append(result, &dd)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

// UpdateName renames a department.
func (r *DepartmentRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Department, error) {
	defer r.s.enter(ctx)()

	d, ok := r.s.departments[id]
	if !ok {
		return nil, fmt.Errorf("department %s: %w", id, domain.ErrNotFound)
	}

	d.Name = name
	d.UpdatedAt = time.Now().UTC()
	r.s.departments[id] = d

	return &d, nil
}

// AdjustCounters applies deltas to the cached counters, clamped at zero.
func (r *DepartmentRepo) AdjustCounters(ctx context.Context, id uuid.UUID, deltaItems, deltaCapacity int) error {
	defer r.s.enter(ctx)()

	d, ok := r.s.departments[id]
	if !ok {
		return fmt.Errorf("department %s: %w", id, domain.ErrNotFound)
	}

	d.ItemCount = max(d.ItemCount+deltaItems, 0)
	d.CapacityUsed = max(d.CapacityUsed+deltaCapacity, 0)
	d.UpdatedAt = time.Now().UTC()
	r.s.departments[id] = d

	return nil
}

// SetCounters overwrites both cached counters; used by reconciliation.
func (r *DepartmentRepo) SetCounters(ctx context.Context, id uuid.UUID, itemCount, capacityUsed int) (*domain.Department, error) {
	defer r.s.enter(ctx)()

	d, ok := r.s.departments[id]
	if !ok {
		return nil, fmt.Errorf("department %s: %w", id, domain.ErrNotFound)
	}

	d.ItemCount = itemCount
	d.CapacityUsed = capacityUsed
	d.UpdatedAt = time.Now().UTC()
	r.s.departments[id] = d

	return &d, nil
}

// ListAll returns every department across companies, ordered by company
// then name. Only the metrics collector uses it.
func (r *DepartmentRepo) ListAll(ctx context.Context) ([]*domain.Department, error) {
	defer r.s.enter(ctx)()

	result := []*domain.Department{}
	for _, d := range r.s.departments {
		dd := d
		result = append(result, &dd)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CompanyID != result[j].CompanyID {
			return result[i].CompanyID.String() < result[j].CompanyID.String()
		}
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// CountByCompany returns the number of departments in a company.
func (r *DepartmentRepo) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	defer r.s.enter(ctx)()

	count := 0
	for _, d := range r.s.departments {
		if d.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}
