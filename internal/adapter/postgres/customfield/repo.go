// Package customfield implements the CustomField repository using PostgreSQL.
package customfield

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akulikova/stockroom-backend/internal/adapter/postgres"
	"github.com/akulikova/stockroom-backend/internal/domain"
)

// Repo provides custom field persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new custom field repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const fieldColumns = `id, company_id, department_id, name, field_type, options, required, created_at, updated_at`

const createSQL = `
INSERT INTO custom_fields (id, company_id, department_id, name, field_type, options, required, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + fieldColumns

const getByIDSQL = `
SELECT ` + fieldColumns + `
FROM custom_fields
WHERE id = $1`

const listByCompanySQL = `
SELECT ` + fieldColumns + `
FROM custom_fields
WHERE company_id = $1
ORDER BY name`

const deleteSQL = `DELETE FROM custom_fields WHERE id = $1`

// Create inserts a new custom field definition.
func (r *Repo) Create(ctx context.Context, f *domain.CustomField) (*domain.CustomField, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := f.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()

	options, err := marshalOptions(f.Options)
	if err != nil {
		return nil, fmt.Errorf("custom_field %s: %w", id, err)
	}

	created, err := scanField(q.QueryRow(ctx, createSQL,
		id, f.CompanyID, uuidPtrToPgUUID(f.DepartmentID), f.Name, f.Type, options, f.Required, now))
	if err != nil {
		return nil, postgres.MapError(err, "custom_field", id)
	}

	return created, nil
}

// GetByID returns a field definition by primary key. Tenant scoping is the
// caller's responsibility (fetch then authorize).
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanField(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "custom_field", id)
	}

	return f, nil
}

// ListByCompany returns all field definitions of a company, company-wide and
// department-scoped alike; scoping resolution happens in the domain.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.CustomField, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCompanySQL, companyID)
	if err != nil {
		return nil, fmt.Errorf("list custom fields: %w", err)
	}
	defer rows.Close()

	return scanFields(rows)
}

// Delete removes a field definition permanently.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "custom_field", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("custom_field %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// scanField scans a single custom field row.
func scanField(row interface{ Scan(dest ...any) error }) (*domain.CustomField, error) {
	var (
		f       domain.CustomField
		deptID  pgtype.UUID
		options []byte
	)

	err := row.Scan(&f.ID, &f.CompanyID, &deptID, &f.Name, &f.Type, &options, &f.Required, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if deptID.Valid {
		id := uuid.UUID(deptID.Bytes)
		f.DepartmentID = &id
	}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &f.Options); err != nil {
			return nil, fmt.Errorf("custom_field %s unmarshal options: %w", f.ID, err)
		}
	}

	return &f, nil
}

// scanFields drains rows into a slice.
func scanFields(rows pgx.Rows) ([]domain.CustomField, error) {
	var result []domain.CustomField
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.CustomField{}
	}

	return result, nil
}

// marshalOptions serializes select options (nil -> NULL).
func marshalOptions(options []string) ([]byte, error) {
	if options == nil {
		return nil, nil
	}
	b, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}
	return b, nil
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
