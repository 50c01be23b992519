// Package staff implements user administration inside a company: listing
// users, granting and revoking department memberships, and the staged-out
// invitation flow.
package staff

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.User, error)
	Memberships(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AddMembership(ctx context.Context, userID, departmentID uuid.UUID) error
	RemoveMembership(ctx context.Context, userID, departmentID uuid.UUID) error
}

type departmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the staff administration logic.
type Service struct {
	log         *slog.Logger
	users       userRepo
	departments departmentRepo
}

// NewService creates a new Staff service.
func NewService(logger *slog.Logger, users userRepo, departments departmentRepo) *Service {
	return &Service{
		log:         logger.With("service", "staff"),
		users:       users,
		departments: departments,
	}
}
