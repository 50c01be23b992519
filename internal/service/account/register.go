package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// RegisterResult is the outcome of a successful company registration.
type RegisterResult struct {
	Company *domain.Company
	Admin   *domain.User
	Token   string
}

// Register creates a new company together with its default department and
// first admin user, then signs the admin in. All three rows commit or none
// do.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pattern := input.AssetPattern
	if pattern == "" {
		pattern = s.cfg.DefaultAssetPattern
	}
	if !domain.HasPlaceholder(pattern) {
		// Every item would get the literal pattern as its asset id. Flag it
		// loudly but let the company decide.
		s.log.WarnContext(ctx, "asset pattern has no placeholder run",
			slog.String("pattern", pattern),
		)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var (
		company *domain.Company
		admin   *domain.User
	)
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		company, createErr = s.companies.Create(txCtx, &domain.Company{
			Name:         domain.NormalizeName(input.CompanyName),
			AssetPattern: pattern,
			AssetCounter: 1,
			Tier:         domain.TierFree,
		})
		if createErr != nil {
			return fmt.Errorf("create company: %w", createErr)
		}

		if _, deptErr := s.departments.Create(txCtx, &domain.Department{
			CompanyID: company.ID,
			Name:      domain.DefaultDepartmentName,
		}); deptErr != nil {
			return fmt.Errorf("create default department: %w", deptErr)
		}

		admin, createErr = s.users.Create(txCtx, &domain.User{
			CompanyID:    company.ID,
			Name:         domain.NormalizeName(input.AdminName),
			Email:        domain.NormalizeEmail(input.AdminEmail),
			Role:         domain.RoleAdmin,
			PasswordHash: hash,
		})
		if createErr != nil {
			return fmt.Errorf("create admin user: %w", createErr)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	token, err := s.tokens.GenerateAccessToken(domain.Identity{
		UserID:    admin.ID,
		CompanyID: company.ID,
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.InfoContext(ctx, "company registered",
		slog.String("company_id", company.ID.String()),
		slog.String("admin_id", admin.ID.String()),
	)

	return &RegisterResult{Company: company, Admin: admin, Token: token}, nil
}
