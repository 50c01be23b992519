// Package customfield implements company-defined item attributes: admin
// CRUD over the definitions and the per-department resolution rule.
package customfield

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type customFieldRepo interface {
	Create(ctx context.Context, f *domain.CustomField) (*domain.CustomField, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.CustomField, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type departmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the custom field business logic.
type Service struct {
	log         *slog.Logger
	fields      customFieldRepo
	departments departmentRepo
}

// NewService creates a new CustomField service.
func NewService(logger *slog.Logger, fields customFieldRepo, departments departmentRepo) *Service {
	return &Service{
		log:         logger.With("service", "customfield"),
		fields:      fields,
		departments: departments,
	}
}
