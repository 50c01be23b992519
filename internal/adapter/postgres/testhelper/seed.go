package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCompany creates a company with the default asset pattern and a fresh
// counter. Returns the filled domain.Company.
func SeedCompany(t *testing.T, pool *pgxpool.Pool) domain.Company {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	company := domain.Company{
		ID:           uuid.New(),
		Name:         "Test Company " + suffix,
		AssetPattern: "ITEM-####",
		AssetCounter: 1,
		Tier:         domain.TierFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO companies (id, name, asset_pattern, asset_counter, tier, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		company.ID, company.Name, company.AssetPattern, company.AssetCounter, string(company.Tier), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany insert: %v", err)
	}

	return company
}

// SeedDepartment creates a department with zeroed counters in the company.
func SeedDepartment(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID) domain.Department {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	dept := domain.Department{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      "Dept " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO departments (id, company_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)`,
		dept.ID, dept.CompanyID, dept.Name, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDepartment insert: %v", err)
	}

	return dept
}

// SeedUser creates a user in the company with the given role. The password
// hash is a fixed placeholder; credential checks are not exercised against
// seeded rows.
func SeedUser(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		CompanyID:    companyID,
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		Role:         role,
		PasswordHash: "$2a$04$placeholderplaceholderplaceph",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, company_id, name, email, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		user.ID, user.CompanyID, user.Name, user.Email, string(user.Role), user.PasswordHash, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedItem creates an item in the department with a unique asset id.
func SeedItem(t *testing.T, pool *pgxpool.Pool, companyID, departmentID, userID uuid.UUID) domain.InventoryItem {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.InventoryItem{
		ID:           uuid.New(),
		CompanyID:    companyID,
		DepartmentID: departmentID,
		AssetID:      "SEED-" + suffix,
		Name:         "Test Item " + suffix,
		Quantity:     1,
		Status:       domain.ItemStatusActive,
		CreatedBy:    userID,
		UpdatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, company_id, department_id, asset_id, name, quantity, status, created_by, updated_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $9, $9)`,
		item.ID, item.CompanyID, item.DepartmentID, item.AssetID, item.Name, item.Quantity, string(item.Status), item.CreatedBy, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}
