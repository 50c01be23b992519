// Package activity implements the ActivityLog repository using PostgreSQL.
// The table is append-only: rows are inserted, listed newest-first, and
// never updated or deleted.
package activity

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

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const activityColumns = `id, company_id, action, item_id, asset_id, item_name, department_name, user_id, user_name, created_at`

const createSQL = `
INSERT INTO activity_logs (id, company_id, action, item_id, asset_id, item_name, department_name, user_id, user_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + activityColumns

const listByCompanySQL = `
SELECT ` + activityColumns + `
FROM activity_logs
WHERE company_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

// Create appends a new activity entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, entry domain.ActivityLog) (domain.ActivityLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := entry.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	created, err := scanActivity(q.QueryRow(ctx, createSQL,
		id, entry.CompanyID, entry.Action, entry.ItemID, entry.AssetID,
		entry.ItemName, entry.DepartmentName, entry.UserID, entry.UserName, createdAt))
	if err != nil {
		return domain.ActivityLog{}, postgres.MapError(err, "activity_log", id)
	}

	return *created, nil
}

// ListByCompany returns the most recent entries for a company, newest first.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.ActivityLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCompanySQL, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// scanActivity scans a single activity row.
func scanActivity(row interface{ Scan(dest ...any) error }) (*domain.ActivityLog, error) {
	var a domain.ActivityLog
	err := row.Scan(&a.ID, &a.CompanyID, &a.Action, &a.ItemID, &a.AssetID,
		&a.ItemName, &a.DepartmentName, &a.UserID, &a.UserName, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// scanActivities drains rows into a slice.
func scanActivities(rows pgx.Rows) ([]domain.ActivityLog, error) {
	var result []domain.ActivityLog
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.ActivityLog{}
	}

	return result, nil
}
