package customfield

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/policy"
	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// Create defines a new custom field. Admin only. A department-scoped field
// shadows a company-wide field of the same name for that department's items.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.CustomField, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.CanManageCompany(id); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.DepartmentID != nil {
		dept, err := s.departments.GetByID(ctx, *input.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("get department: %w", err)
		}
		if dept.CompanyID != id.CompanyID {
			return nil, fmt.Errorf("department %s: %w", dept.ID, domain.ErrNotFound)
		}
	}

	field, err := s.fields.Create(ctx, &domain.CustomField{
		CompanyID:    id.CompanyID,
		DepartmentID: input.DepartmentID,
		Name:         domain.NormalizeName(input.Name),
		Type:         input.Type,
		Options:      input.Options,
		Required:     input.Required,
	})
	if err != nil {
		return nil, fmt.Errorf("create custom field: %w", err)
	}

	s.log.InfoContext(ctx, "custom field created",
		slog.String("field_id", field.ID.String()),
		slog.String("name", field.Name),
	)

	return field, nil
}

// List returns the company's field definitions. With a department id it
// resolves the effective set for that department: scoped definitions shadow
// company-wide ones by name.
func (s *Service) List(ctx context.Context, departmentID *uuid.UUID) ([]domain.CustomField, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields, err := s.fields.ListByCompany(ctx, id.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list custom fields: %w", err)
	}
	if departmentID == nil {
		return fields, nil
	}

	dept, err := s.departments.GetByID(ctx, *departmentID)
	if err != nil {
		return nil, fmt.Errorf("get department: %w", err)
	}
	if err := policy.CanViewDepartment(id, dept); err != nil {
		return nil, err
	}

	return domain.EffectiveFields(fields, dept.ID), nil
}

// Delete removes a field definition. Admin only. Existing items keep their
// stored values; only the definition disappears.
func (s *Service) Delete(ctx context.Context, fieldID uuid.UUID) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	field, err := s.fields.GetByID(ctx, fieldID)
	if err != nil {
		return fmt.Errorf("get custom field: %w", err)
	}
	if field.CompanyID != id.CompanyID {
		return fmt.Errorf("custom field %s: %w", fieldID, domain.ErrNotFound)
	}
	if err := policy.CanManageCompany(id); err != nil {
		return err
	}

	if err := s.fields.Delete(ctx, fieldID); err != nil {
		return fmt.Errorf("delete custom field: %w", err)
	}

	s.log.InfoContext(ctx, "custom field deleted",
		slog.String("field_id", fieldID.String()),
	)

	return nil
}
