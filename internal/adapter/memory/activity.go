package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// ActivityRepo is the in-memory activity log repository. The log is
// append-only; entries are never updated or deleted.
type ActivityRepo struct {
	s *Store
}

func (r *ActivityRepo) Create(ctx context.Context, entry domain.ActivityLog) (domain.ActivityLog, error) {
	defer r.s.enter(ctx)()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now().UTC()

	r.s.activity = append(r.s.activity, entry)
	return entry, nil
}

// ListByCompany returns the company's entries newest first, at most limit.
func (r *ActivityRepo) ListByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.ActivityLog, error) {
	defer r.s.enter(ctx)()

	result := []domain.ActivityLog{}
	for i := len(r.s.activity) - 1; i >= 0; i-- {
		if r.s.activity[i].CompanyID != companyID {
			continue
		}
		result = append(result, r.s.activity[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}
