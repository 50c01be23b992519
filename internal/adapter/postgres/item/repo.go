// Package item implements the InventoryItem repository using PostgreSQL.
// List filtering is built with squirrel; the custom-field payload is stored
// as JSONB.
package item

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akulikova/stockroom-backend/internal/adapter/postgres"
	"github.com/akulikova/stockroom-backend/internal/domain"
)

// Repo provides inventory item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const itemColumns = `id, company_id, department_id, asset_id, name, quantity, unit_price,
	location, purchase_date, status, custom_values, created_by, updated_by, created_at, updated_at`

const createSQL = `
INSERT INTO items (id, company_id, department_id, asset_id, name, quantity, unit_price,
	location, purchase_date, status, custom_values, created_by, updated_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12, $13, $13)
RETURNING ` + itemColumns

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE id = $1`

const updateSQL = `
UPDATE items
SET department_id = $2, name = $3, quantity = $4, unit_price = $5, location = $6,
    purchase_date = $7, status = $8, custom_values = $9, updated_by = $10, updated_at = now()
WHERE id = $1
RETURNING ` + itemColumns

const deleteSQL = `DELETE FROM items WHERE id = $1`

const countByCompanySQL = `SELECT count(*) FROM items WHERE company_id = $1`

const countCreatedSinceSQL = `SELECT count(*) FROM items WHERE company_id = $1 AND created_at >= $2`

const countByStatusSQL = `SELECT count(*) FROM items WHERE company_id = $1 AND status = $2`

const countByDepartmentSQL = `
SELECT count(*)
FROM items
WHERE department_id = $1`

// Create inserts a new item row. The asset id must already be issued by the
// caller inside the same transaction.
func (r *Repo) Create(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := it.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()

	values, err := marshalCustomValues(it.CustomValues)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", id, err)
	}

	created, err := scanItem(q.QueryRow(ctx, createSQL,
		id, it.CompanyID, it.DepartmentID, it.AssetID, it.Name, it.Quantity,
		ptrInt64ToPgInt8(it.UnitPrice), ptrStringToPgText(it.Location),
		ptrTimeToPgDate(it.PurchaseDate), it.Status, values, it.CreatedBy, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return created, nil
}

// GetByID returns an item by primary key. Tenant scoping is the caller's
// responsibility (fetch then authorize).
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return it, nil
}

// Update overwrites the mutable columns of an item with a merged row.
// Callers fetch the current row, apply partial params, and pass the result
// here; asset id, company id and creation metadata never change.
func (r *Repo) Update(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	values, err := marshalCustomValues(it.CustomValues)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", it.ID, err)
	}

	updated, err := scanItem(q.QueryRow(ctx, updateSQL,
		it.ID, it.DepartmentID, it.Name, it.Quantity,
		ptrInt64ToPgInt8(it.UnitPrice), ptrStringToPgText(it.Location),
		ptrTimeToPgDate(it.PurchaseDate), it.Status, values, it.UpdatedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}

	return updated, nil
}

// Delete removes an item permanently. No soft-delete.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns items of a company, optionally narrowed by filter. Order is
// unspecified beyond being stable (name, then id).
func (r *Repo) List(ctx context.Context, companyID uuid.UUID, filter domain.ItemFilter) ([]*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select(
		"id", "company_id", "department_id", "asset_id", "name", "quantity", "unit_price",
		"location", "purchase_date", "status", "custom_values", "created_by", "updated_by",
		"created_at", "updated_at",
	).
		From("items").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("name", "id")

	if filter.DepartmentID != nil {
		builder = builder.Where(sq.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// CountByCompany returns the total number of items in a company.
func (r *Repo) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	return r.scanCount(ctx, countByCompanySQL, companyID)
}

// CountCreatedSince returns how many items were created at or after the
// given instant.
func (r *Repo) CountCreatedSince(ctx context.Context, companyID uuid.UUID, since time.Time) (int, error) {
	return r.scanCount(ctx, countCreatedSinceSQL, companyID, since)
}

// CountByStatus returns how many items have the given status.
func (r *Repo) CountByStatus(ctx context.Context, companyID uuid.UUID, status domain.ItemStatus) (int, error) {
	return r.scanCount(ctx, countByStatusSQL, companyID, status)
}

// CountByDepartment recounts the items actually present in a department.
// Reconciliation derives capacity from this count; the capacity unit lives
// with the caller, not here.
func (r *Repo) CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int, error) {
	return r.scanCount(ctx, countByDepartmentSQL, departmentID)
}

func (r *Repo) scanCount(ctx context.Context, sql string, args ...any) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}

// scanItem scans a single item row.
func scanItem(row interface{ Scan(dest ...any) error }) (*domain.InventoryItem, error) {
	var (
		it           domain.InventoryItem
		unitPrice    pgtype.Int8
		location     pgtype.Text
		purchaseDate pgtype.Date
		values       []byte
	)

	err := row.Scan(&it.ID, &it.CompanyID, &it.DepartmentID, &it.AssetID, &it.Name, &it.Quantity,
		&unitPrice, &location, &purchaseDate, &it.Status, &values,
		&it.CreatedBy, &it.UpdatedBy, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if unitPrice.Valid {
		it.UnitPrice = &unitPrice.Int64
	}
	if location.Valid {
		it.Location = &location.String
	}
	if purchaseDate.Valid {
		it.PurchaseDate = &purchaseDate.Time
	}
	if len(values) > 0 {
		custom := make(map[string]any)
		if err := json.Unmarshal(values, &custom); err != nil {
			return nil, fmt.Errorf("item %s unmarshal custom values: %w", it.ID, err)
		}
		it.CustomValues = custom
	}

	return &it, nil
}

// scanItems drains rows into a slice.
func scanItems(rows pgx.Rows) ([]*domain.InventoryItem, error) {
	var result []*domain.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.InventoryItem{}
	}

	return result, nil
}

// marshalCustomValues serializes the custom-field payload (nil -> NULL).
func marshalCustomValues(values map[string]any) ([]byte, error) {
	if values == nil {
		return nil, nil
	}
	b, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("marshal custom values: %w", err)
	}
	return b, nil
}

// ptrInt64ToPgInt8 converts *int64 to pgtype.Int8 (nil -> NULL).
func ptrInt64ToPgInt8(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

// ptrStringToPgText converts *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// ptrTimeToPgDate converts *time.Time to pgtype.Date (nil -> NULL).
func ptrTimeToPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
