package reporting

import (
	"context"
	"fmt"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// ListActivity returns the company's audit feed, newest first. limit <= 0
// falls back to the configured default; the configured maximum is a hard
// ceiling.
func (s *Service) ListActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	limit = clampLimit(limit, s.cfg.ActivityListLimit, s.cfg.ActivityListLimit)

	entries, err := s.activity.ListByCompany(ctx, id.CompanyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}
