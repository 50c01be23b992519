// Package user implements the User repository and the user/department
// membership edges using PostgreSQL.
package user

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

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, company_id, name, email, role, password_hash, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, company_id, name, email, role, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE company_id = $1 AND email = $2`

const listByCompanySQL = `
SELECT ` + userColumns + `
FROM users
WHERE company_id = $1
ORDER BY name`

const membershipsSQL = `
SELECT department_id FROM user_departments WHERE user_id = $1`

const addMembershipSQL = `
INSERT INTO user_departments (user_id, department_id, created_at)
VALUES ($1, $2, now())
ON CONFLICT DO NOTHING`

const removeMembershipSQL = `
DELETE FROM user_departments WHERE user_id = $1 AND department_id = $2`

// Create inserts a new user. Email must already be normalized (lowercased);
// a duplicate within the company maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()

	created, err := scanUser(q.QueryRow(ctx, createSQL, id, u.CompanyID, u.Name, u.Email, u.Role, u.PasswordHash, now))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return created, nil
}

// GetByID returns a user by primary key. Tenant scoping is the caller's
// responsibility (fetch then authorize).
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by company and normalized email.
func (r *Repo) GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, companyID, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", companyID)
	}

	return u, nil
}

// ListByCompany returns all users of a company ordered by name.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCompanySQL, companyID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var result []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.User{}
	}

	return result, nil
}

// Memberships returns the department ids the user holds membership edges for.
// Returns an empty slice (not nil) for users without memberships (admins
// typically have none — their access is implicit).
func (r *Repo) Memberships(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, membershipsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	ids, err := scanUUIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	return ids, nil
}

// AddMembership grants an employee access to a department.
// Idempotent: granting the same edge twice is NOT an error.
func (r *Repo) AddMembership(ctx context.Context, userID, departmentID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, addMembershipSQL, userID, departmentID); err != nil {
		return postgres.MapError(err, "user_department", userID)
	}

	return nil
}

// RemoveMembership revokes a membership edge. Not an error if the edge does
// not exist.
func (r *Repo) RemoveMembership(ctx context.Context, userID, departmentID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, removeMembershipSQL, userID, departmentID); err != nil {
		return postgres.MapError(err, "user_department", userID)
	}

	return nil
}

// scanUser scans a single user row.
func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// scanUUIDs drains a single-column uuid result set.
func scanUUIDs(rows pgx.Rows) ([]uuid.UUID, error) {
	result := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
