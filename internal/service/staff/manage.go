package staff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/policy"
	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// ListUsers returns the company's users. Admin only.
func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.CanManageCompany(id); err != nil {
		return nil, err
	}

	users, err := s.users.ListByCompany(ctx, id.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Memberships returns a user's department memberships. Admin only; the
// target must belong to the caller's company.
func (s *Service) Memberships(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	target, err := s.authorizeTarget(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	deps, err := s.users.Memberships(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("load memberships: %w", err)
	}
	return deps, nil
}

// AssignDepartment grants an employee access to a department. Admin only.
// Idempotent. Admins themselves never need edges, so assigning one to an
// admin is rejected as a validation error.
func (s *Service) AssignDepartment(ctx context.Context, userID, departmentID uuid.UUID) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	target, err := s.authorizeTarget(ctx, id, userID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleAdmin {
		return domain.NewValidationError("user_id", "admins have implicit access to all departments")
	}

	dept, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("get department: %w", err)
	}
	if dept.CompanyID != id.CompanyID {
		return fmt.Errorf("department %s: %w", departmentID, domain.ErrNotFound)
	}

	if err := s.users.AddMembership(ctx, userID, departmentID); err != nil {
		return fmt.Errorf("add membership: %w", err)
	}

	s.log.InfoContext(ctx, "membership granted",
		slog.String("user_id", userID.String()),
		slog.String("department_id", departmentID.String()),
	)

	return nil
}

// UnassignDepartment revokes an employee's department access. Admin only.
func (s *Service) UnassignDepartment(ctx context.Context, userID, departmentID uuid.UUID) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.authorizeTarget(ctx, id, userID); err != nil {
		return err
	}

	if err := s.users.RemoveMembership(ctx, userID, departmentID); err != nil {
		return fmt.Errorf("remove membership: %w", err)
	}

	s.log.InfoContext(ctx, "membership revoked",
		slog.String("user_id", userID.String()),
		slog.String("department_id", departmentID.String()),
	)

	return nil
}

// InviteUser is not available in this deployment stage; there is no mail
// delivery yet. The surface responds explicitly instead of silently
// succeeding.
func (s *Service) InviteUser(ctx context.Context, _ string, _ domain.Role) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := policy.CanManageCompany(id); err != nil {
		return err
	}
	return fmt.Errorf("invite user: %w", domain.ErrUnavailable)
}

// authorizeTarget runs the admin and tenant checks for operations on another
// user. Cross-company targets read as not found.
func (s *Service) authorizeTarget(ctx context.Context, id domain.Identity, userID uuid.UUID) (*domain.User, error) {
	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if target.CompanyID != id.CompanyID {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	if err := policy.CanManageCompany(id); err != nil {
		return nil, err
	}
	return target, nil
}
