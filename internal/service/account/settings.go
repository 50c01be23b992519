package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/policy"
	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// GetCompany returns the caller's own company.
func (s *Service) GetCompany(ctx context.Context) (*domain.Company, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	company, err := s.companies.GetByID(ctx, id.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return company, nil
}

// UpdateAssetPattern changes the company's asset-id pattern. Admin only.
// Already-issued asset ids keep their original rendering; only future items
// use the new pattern.
func (s *Service) UpdateAssetPattern(ctx context.Context, input UpdateAssetPatternInput) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := policy.CanManageCompany(id); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if !domain.HasPlaceholder(input.Pattern) {
		s.log.WarnContext(ctx, "asset pattern has no placeholder run",
			slog.String("pattern", input.Pattern),
			slog.String("company_id", id.CompanyID.String()),
		)
	}

	if err := s.companies.UpdatePattern(ctx, id.CompanyID, input.Pattern); err != nil {
		return fmt.Errorf("update pattern: %w", err)
	}

	s.log.InfoContext(ctx, "asset pattern updated",
		slog.String("company_id", id.CompanyID.String()),
		slog.String("pattern", input.Pattern),
	)

	return nil
}

// ChangeSubscription is not available in this deployment stage. It exists so
// the API surface responds with an explicit outcome instead of a silent
// success.
func (s *Service) ChangeSubscription(ctx context.Context, _ domain.SubscriptionTier) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	// The policy answer comes first so an employee probing a staged-out
	// admin operation sees forbidden, not unavailable.
	if err := policy.CanManageCompany(id); err != nil {
		return err
	}
	return fmt.Errorf("change subscription: %w", domain.ErrUnavailable)
}
