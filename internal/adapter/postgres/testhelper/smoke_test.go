package testhelper

import (
	"context"
	"testing"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	company := SeedCompany(t, pool)
	dept := SeedDepartment(t, pool, company.ID)
	user := SeedUser(t, pool, company.ID, domain.RoleAdmin)
	item := SeedItem(t, pool, company.ID, dept.ID, user.ID)

	var assetID string
	err := pool.QueryRow(
		context.Background(),
		`SELECT asset_id FROM items WHERE id = $1`,
		item.ID,
	).Scan(&assetID)
	if err != nil {
		t.Fatalf("expected item in DB, got error: %v", err)
	}

	if assetID != item.AssetID {
		t.Fatalf("expected asset id %q, got %q", item.AssetID, assetID)
	}
}
