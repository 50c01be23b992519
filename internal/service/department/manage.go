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

// Create adds a department to the caller's company. Admin only.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Department, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.CanCreateDepartment(id); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.departments.Create(ctx, &domain.Department{
		CompanyID: id.CompanyID,
		Name:      domain.NormalizeName(input.Name),
	})
	if err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}

	s.log.InfoContext(ctx, "department created",
		slog.String("department_id", dept.ID.String()),
		slog.String("company_id", id.CompanyID.String()),
	)

	return dept, nil
}

// List returns the caller's visible departments: all of them for admins,
// membership departments for employees.
func (s *Service) List(ctx context.Context) ([]*domain.Department, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	all, err := s.departments.ListByCompany(ctx, id.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	if id.IsAdmin() {
		return all, nil
	}

	visible := make([]*domain.Department, 0, len(all))
	for _, d := range all {
		if id.HasDepartment(d.ID) {
			visible = append(visible, d)
		}
	}
	return visible, nil
}

// Get returns one department after the tenant and membership checks.
func (s *Service) Get(ctx context.Context, departmentID uuid.UUID) (*domain.Department, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	dept, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("get department: %w", err)
	}
	if err := policy.CanViewDepartment(id, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// Rename changes a department's name. Admin only. Activity snapshots taken
// before the rename keep the old name.
func (s *Service) Rename(ctx context.Context, departmentID uuid.UUID, input RenameInput) (*domain.Department, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("get department: %w", err)
	}
	if err := policy.CanManageDepartment(id, dept); err != nil {
		return nil, err
	}

	updated, err := s.departments.UpdateName(ctx, departmentID, domain.NormalizeName(input.Name))
	if err != nil {
		return nil, fmt.Errorf("rename department: %w", err)
	}

	s.log.InfoContext(ctx, "department renamed",
		slog.String("department_id", departmentID.String()),
	)

	return updated, nil
}

// Delete is not available in this deployment stage: items, custom fields and
// history still reference departments and there is no reassignment story
// yet. The surface responds explicitly instead of silently succeeding.
func (s *Service) Delete(ctx context.Context, departmentID uuid.UUID) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	dept, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("get department: %w", err)
	}
	if err := policy.CanManageDepartment(id, dept); err != nil {
		return err
	}

	return fmt.Errorf("delete department: %w", domain.ErrUnavailable)
}
