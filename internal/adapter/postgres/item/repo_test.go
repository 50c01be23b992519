package item_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulikova/stockroom-backend/internal/adapter/postgres/item"
	"github.com/akulikova/stockroom-backend/internal/adapter/postgres/testhelper"
	"github.com/akulikova/stockroom-backend/internal/domain"
)

func TestRepo_CreateAndGet(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := item.New(pool)
	ctx := context.Background()

	company := testhelper.SeedCompany(t, pool)
	dept := testhelper.SeedDepartment(t, pool, company.ID)
	user := testhelper.SeedUser(t, pool, company.ID, domain.RoleAdmin)

	price := int64(129900)
	created, err := repo.Create(ctx, &domain.InventoryItem{
		CompanyID:    company.ID,
		DepartmentID: dept.ID,
		AssetID:      "TEST-0001",
		Name:         "Laptop",
		Quantity:     3,
		UnitPrice:    &price,
		Status:       domain.ItemStatusActive,
		CustomValues: map[string]any{"Serial Number": "SN-42"},
		CreatedBy:    user.ID,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "TEST-0001", got.AssetID)
	assert.Equal(t, 3, got.Quantity)
	require.NotNil(t, got.UnitPrice)
	assert.Equal(t, price, *got.UnitPrice)
	assert.Equal(t, "SN-42", got.CustomValues["Serial Number"])
	assert.Equal(t, user.ID, got.CreatedBy)
	assert.Equal(t, user.ID, got.UpdatedBy)
}

func TestRepo_Create_DuplicateAssetIDConflicts(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := item.New(pool)
	ctx := context.Background()

	company := testhelper.SeedCompany(t, pool)
	dept := testhelper.SeedDepartment(t, pool, company.ID)
	user := testhelper.SeedUser(t, pool, company.ID, domain.RoleAdmin)

	first := &domain.InventoryItem{
		CompanyID:    company.ID,
		DepartmentID: dept.ID,
		AssetID:      "DUP-0001",
		Name:         "First",
		Quantity:     1,
		Status:       domain.ItemStatusActive,
		CreatedBy:    user.ID,
	}
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)

	second := *first
	second.ID = uuid.Nil
	second.Name = "Second"
	_, err = repo.Create(ctx, &second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict), "expected ErrConflict, got %v", err)
}

func TestRepo_List_FiltersByDepartmentAndStatus(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := item.New(pool)
	ctx := context.Background()

	company := testhelper.SeedCompany(t, pool)
	deptA := testhelper.SeedDepartment(t, pool, company.ID)
	deptB := testhelper.SeedDepartment(t, pool, company.ID)
	user := testhelper.SeedUser(t, pool, company.ID, domain.RoleAdmin)

	seed := func(dept uuid.UUID, assetID string, status domain.ItemStatus) {
		_, err := repo.Create(ctx, &domain.InventoryItem{
			CompanyID:    company.ID,
			DepartmentID: dept,
			AssetID:      assetID,
			Name:         "Item " + assetID,
			Quantity:     1,
			Status:       status,
			CreatedBy:    user.ID,
		})
		require.NoError(t, err)
	}
	seed(deptA.ID, "LIST-0001", domain.ItemStatusActive)
	seed(deptA.ID, "LIST-0002", domain.ItemStatusLow)
	seed(deptB.ID, "LIST-0003", domain.ItemStatusLow)

	low := domain.ItemStatusLow
	got, err := repo.List(ctx, company.ID, domain.ItemFilter{DepartmentID: &deptA.ID, Status: &low})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "LIST-0002", got[0].AssetID)

	all, err := repo.List(ctx, company.ID, domain.ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepo_CountByDepartment(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := item.New(pool)
	ctx := context.Background()

	company := testhelper.SeedCompany(t, pool)
	dept := testhelper.SeedDepartment(t, pool, company.ID)
	user := testhelper.SeedUser(t, pool, company.ID, domain.RoleAdmin)

	for _, assetID := range []string{"CNT-0001", "CNT-0002"} {
		_, err := repo.Create(ctx, &domain.InventoryItem{
			CompanyID:    company.ID,
			DepartmentID: dept.ID,
			AssetID:      assetID,
			Name:         "Item " + assetID,
			Quantity:     5,
			Status:       domain.ItemStatusActive,
			CreatedBy:    user.ID,
		})
		require.NoError(t, err)
	}

	count, err := repo.CountByDepartment(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
