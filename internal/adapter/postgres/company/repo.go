// Package company implements the Company repository using PostgreSQL.
// It owns the per-company asset counter, advanced only through an atomic
// UPDATE ... RETURNING so concurrent item creations serialize on the row.
package company

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akulikova/stockroom-backend/internal/adapter/postgres"
	"github.com/akulikova/stockroom-backend/internal/domain"
)

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new company repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO companies (id, name, asset_pattern, asset_counter, tier, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id, name, asset_pattern, asset_counter, tier, created_at, updated_at`

const getByIDSQL = `
SELECT id, name, asset_pattern, asset_counter, tier, created_at, updated_at
FROM companies
WHERE id = $1`

const nextAssetNumberSQL = `
UPDATE companies
SET asset_counter = asset_counter + 1, updated_at = now()
WHERE id = $1
RETURNING asset_counter - 1, asset_pattern`

const updatePatternSQL = `
UPDATE companies
SET asset_pattern = $2, updated_at = now()
WHERE id = $1`

// Create inserts a new company row. The asset counter starts at 1 unless the
// caller (registration service) set it explicitly.
func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	counter := c.AssetCounter
	if counter == 0 {
		counter = 1
	}
	now := time.Now().UTC()

	row := q.QueryRow(ctx, createSQL, id, c.Name, c.AssetPattern, counter, c.Tier, now)
	created, err := scanCompany(row)
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}

	return created, nil
}

// GetByID returns a company by primary key. No tenant filter applies here:
// the company row IS the tenant, and callers compare its id against the
// caller identity before exposing anything.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCompany(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}

	return c, nil
}

// NextAssetNumber atomically claims the current counter value and advances
// the counter by one, returning the claimed value and the company's pattern.
// Run inside the item-creation transaction: a rollback releases the claim as
// a gap, never as a duplicate.
func (r *Repo) NextAssetNumber(ctx context.Context, companyID uuid.UUID) (int64, string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		n       int64
		pattern string
	)
	if err := q.QueryRow(ctx, nextAssetNumberSQL, companyID).Scan(&n, &pattern); err != nil {
		return 0, "", postgres.MapError(err, "company", companyID)
	}

	return n, pattern, nil
}

// UpdatePattern replaces the company's asset id pattern. Existing asset ids
// are unaffected.
func (r *Repo) UpdatePattern(ctx context.Context, companyID uuid.UUID, pattern string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updatePatternSQL, companyID, pattern)
	if err != nil {
		return postgres.MapError(err, "company", companyID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company %s: %w", companyID, domain.ErrNotFound)
	}

	return nil
}

// scanCompany scans a single company row.
func scanCompany(row interface{ Scan(dest ...any) error }) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.AssetPattern, &c.AssetCounter, &c.Tier, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
