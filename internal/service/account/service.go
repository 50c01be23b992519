// Package account implements company registration, sign-in, and
// company-level settings.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/config"
	"github.com/akulikova/stockroom-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type companyRepo interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	UpdatePattern(ctx context.Context, companyID uuid.UUID, pattern string) error
}

type departmentRepo interface {
	Create(ctx context.Context, d *domain.Department) (*domain.Department, error)
}

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*domain.User, error)
	Memberships(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type tokenIssuer interface {
	GenerateAccessToken(id domain.Identity) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the account business logic.
type Service struct {
	log         *slog.Logger
	companies   companyRepo
	departments departmentRepo
	users       userRepo
	tx          txManager
	hasher      passwordHasher
	tokens      tokenIssuer
	cfg         config.InventoryConfig
}

// NewService creates a new Account service.
func NewService(
	logger *slog.Logger,
	companies companyRepo,
	departments departmentRepo,
	users userRepo,
	tx txManager,
	hasher passwordHasher,
	tokens tokenIssuer,
	cfg config.InventoryConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "account"),
		companies:   companies,
		departments: departments,
		users:       users,
		tx:          tx,
		hasher:      hasher,
		tokens:      tokens,
		cfg:         cfg,
	}
}
