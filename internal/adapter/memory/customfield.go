package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// CustomFieldRepo is the in-memory custom field definition repository.
type CustomFieldRepo struct {
	s *Store
}

func (r *CustomFieldRepo) Create(ctx context.Context, f *domain.CustomField) (*domain.CustomField, error) {
	defer r.s.enter(ctx)()

	for _, existing := range r.s.fields {
		if existing.CompanyID == f.CompanyID && existing.Name == f.Name && sameScope(existing.DepartmentID, f.DepartmentID) {
			return nil, fmt.Errorf("custom field %q: %w", f.Name, domain.ErrAlreadyExists)
		}
	}

	created := *f
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.CreatedAt = time.Now().UTC()
	created.Options = append([]string(nil), f.Options...)

	r.s.fields[created.ID] = created

	out := created
	return &out, nil
}

func (r *CustomFieldRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
	defer r.s.enter(ctx)()

	f, ok := r.s.fields[id]
	if !ok {
		return nil, fmt.Errorf("custom field %s: %w", id, domain.ErrNotFound)
	}
	f.Options = append([]string(nil), f.Options...)
	return &f, nil
}

// ListByCompany returns both company-wide and department-scoped definitions,
// ordered by name.
func (r *CustomFieldRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.CustomField, error) {
	defer r.s.enter(ctx)()

	result := []domain.CustomField{}
	for _, f := range r.s.fields {
		if f.CompanyID == companyID {
			cp := f
			cp.Options = append([]string(nil), f.Options...)
			result = append(result, cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

func (r *CustomFieldRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.enter(ctx)()

	if _, ok := r.s.fields[id]; !ok {
		return fmt.Errorf("custom field %s: %w", id, domain.ErrNotFound)
	}
	delete(r.s.fields, id)
	return nil
}

func sameScope(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
