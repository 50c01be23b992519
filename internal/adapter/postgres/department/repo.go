// Package department implements the Department repository using PostgreSQL.
// Besides CRUD it owns the denormalized counter columns (item_count,
// capacity_used), which are adjusted with clamped-at-zero arithmetic and can
// be recomputed from live items.
package department

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akulikova/stockroom-backend/internal/adapter/postgres"
	"github.com/akulikova/stockroom-backend/internal/domain"
)

// Repo provides department persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new department repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const departmentColumns = `id, company_id, name, item_count, capacity_used, created_at, updated_at`

const createSQL = `
INSERT INTO departments (id, company_id, name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + departmentColumns

const getByIDSQL = `
SELECT ` + departmentColumns + `
FROM departments
WHERE id = $1`

const listByCompanySQL = `
SELECT ` + departmentColumns + `
FROM departments
WHERE company_id = $1
ORDER BY name`

const updateNameSQL = `
UPDATE departments
SET name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + departmentColumns

const adjustCountersSQL = `
UPDATE departments
SET item_count    = GREATEST(item_count + $2, 0),
    capacity_used = GREATEST(capacity_used + $3, 0),
    updated_at    = now()
WHERE id = $1`

const setCountersSQL = `
UPDATE departments
SET item_count = $2, capacity_used = $3, updated_at = now()
WHERE id = $1
RETURNING ` + departmentColumns

const countByCompanySQL = `SELECT count(*) FROM departments WHERE company_id = $1`

const listAllSQL = `
SELECT ` + departmentColumns + `
FROM departments
ORDER BY company_id, name`

// Create inserts a new department with zeroed counters.
func (r *Repo) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()

	created, err := scanDepartment(q.QueryRow(ctx, createSQL, id, d.CompanyID, d.Name, now))
	if err != nil {
		return nil, postgres.MapError(err, "department", id)
	}

	return created, nil
}

// GetByID returns a department by primary key. Tenant scoping is the
// caller's responsibility (fetch then authorize).
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDepartment(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "department", id)
	}

	return d, nil
}

// ListByCompany returns all departments of a company ordered by name.
// Returns an empty slice (not nil) when the company has none.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCompanySQL, companyID)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	return scanDepartments(rows)
}

// UpdateName renames a department and returns the updated row.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDepartment(q.QueryRow(ctx, updateNameSQL, id, name))
	if err != nil {
		return nil, postgres.MapError(err, "department", id)
	}

	return d, nil
}

// AdjustCounters applies deltas to the cached item count and capacity-used
// metric, clamped at zero on the database side. Returns domain.ErrNotFound
// when the department row has vanished — the caller decides whether that
// skips the accounting step or fails the operation.
func (r *Repo) AdjustCounters(ctx context.Context, id uuid.UUID, deltaItems, deltaCapacity int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, adjustCountersSQL, id, deltaItems, deltaCapacity)
	if err != nil {
		return postgres.MapError(err, "department", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("department %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SetCounters overwrites both cached counters; used by reconciliation.
func (r *Repo) SetCounters(ctx context.Context, id uuid.UUID, itemCount, capacityUsed int) (*domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDepartment(q.QueryRow(ctx, setCountersSQL, id, itemCount, capacityUsed))
	if err != nil {
		return nil, postgres.MapError(err, "department", id)
	}

	return d, nil
}

// ListAll returns every department across companies. Only the metrics
// collector uses it; tenant-facing reads go through ListByCompany.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list all departments: %w", err)
	}
	defer rows.Close()

	return scanDepartments(rows)
}

// CountByCompany returns the number of departments in a company.
func (r *Repo) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByCompanySQL, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count departments: %w", err)
	}

	return count, nil
}

// scanDepartment scans a single department row.
func scanDepartment(row interface{ Scan(dest ...any) error }) (*domain.Department, error) {
	var d domain.Department
	err := row.Scan(&d.ID, &d.CompanyID, &d.Name, &d.ItemCount, &d.CapacityUsed, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// scanDepartments drains rows into a slice.
func scanDepartments(rows pgx.Rows) ([]*domain.Department, error) {
	var result []*domain.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Department{}
	}

	return result, nil
}
