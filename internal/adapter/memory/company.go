package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// CompanyRepo is the in-memory company repository.
type CompanyRepo struct {
	s *Store
}

// Create inserts a new company. The asset counter starts at 1 unless set.
func (r *CompanyRepo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	defer r.s.enter(ctx)()

	created := *c
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if created.AssetCounter == 0 {
		created.AssetCounter = 1
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.s.companies[created.ID] = created
	return &created, nil
}

// GetByID returns a company by primary key.
func (r *CompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	defer r.s.enter(ctx)()

	c, ok := r.s.companies[id]
	if !ok {
		return nil, fmt.Errorf("company %s: %w", id, domain.ErrNotFound)
	}
	return &c, nil
}

// NextAssetNumber claims the current counter value and advances the counter,
// mirroring the UPDATE ... RETURNING of the postgres backend. Atomic under
// the store lock.
func (r *CompanyRepo) NextAssetNumber(ctx context.Context, companyID uuid.UUID) (int64, string, error) {
	defer r.s.enter(ctx)()

	c, ok := r.s.companies[companyID]
	if !ok {
		return 0, "", fmt.Errorf("company %s: %w", companyID, domain.ErrNotFound)
	}

	n := c.AssetCounter
	c.AssetCounter++
	c.UpdatedAt = time.Now().UTC()
	r.s.companies[companyID] = c

	return n, c.AssetPattern, nil
}

// UpdatePattern replaces the company's asset id pattern.
func (r *CompanyRepo) UpdatePattern(ctx context.Context, companyID uuid.UUID, pattern string) error {
	defer r.s.enter(ctx)()

	c, ok := r.s.companies[companyID]
	if !ok {
		return fmt.Errorf("company %s: %w", companyID, domain.ErrNotFound)
	}

	c.AssetPattern = pattern
	c.UpdatedAt = time.Now().UTC()
	r.s.companies[companyID] = c

	return nil
}
