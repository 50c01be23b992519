//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_RegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)

	companyID, token := registerCompany(t, srv, "acme")
	require.NotEmpty(t, token)

	// The registered admin can sign in with the same credentials.
	status, resp := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"companyId": companyID,
		"email":     "admin@acme.example.com",
		"password":  "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp["token"])

	// Wrong password is a plain 401 with no detail.
	status, _ = doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"companyId": companyID,
		"email":     "admin@acme.example.com",
		"password":  "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestE2E_ItemLifecycle(t *testing.T) {
	srv := newTestServer(t)

	_, token := registerCompany(t, srv, "lifecycle")
	deptID := defaultDepartmentID(t, srv, token)

	// Create two items; asset ids come from the company pattern in order.
	status, first := doJSON(t, srv, http.MethodPost, "/api/v1/items", token, map[string]any{
		"departmentId": deptID,
		"name":         "Laptop",
		"quantity":     2,
	})
	require.Equal(t, http.StatusCreated, status, "create response: %v", first)
	assert.Equal(t, "ITEM-0001", first["assetId"])

	status, second := doJSON(t, srv, http.MethodPost, "/api/v1/items", token, map[string]any{
		"departmentId": deptID,
		"name":         "Monitor",
		"quantity":     1,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "ITEM-0002", second["assetId"])

	// Department counters reflect both creations.
	status, dept := doJSON(t, srv, http.MethodGet, "/api/v1/departments/"+deptID, token)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, dept["itemCount"])
	assert.EqualValues(t, 20, dept["capacityUsed"])

	// Partial update keeps untouched fields.
	itemID := first["id"].(string)
	status, updated := doJSON(t, srv, http.MethodPatch, "/api/v1/items/"+itemID, token, map[string]any{
		"status": "low",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "low", updated["status"])
	assert.Equal(t, "Laptop", updated["name"])

	// Delete releases the counters.
	status, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/items/"+itemID, token, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, dept = doJSON(t, srv, http.MethodGet, "/api/v1/departments/"+deptID, token)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, dept["itemCount"])
	assert.EqualValues(t, 10, dept["capacityUsed"])
}

func TestE2E_TransferMovesCounters(t *testing.T) {
	srv := newTestServer(t)

	_, token := registerCompany(t, srv, "transfer")
	sourceID := defaultDepartmentID(t, srv, token)

	status, dest := doJSON(t, srv, http.MethodPost, "/api/v1/departments", token, map[string]any{
		"name": "Warehouse",
	})
	require.Equal(t, http.StatusCreated, status)
	destID := dest["id"].(string)

	status, item := doJSON(t, srv, http.MethodPost, "/api/v1/items", token, map[string]any{
		"departmentId": sourceID,
		"name":         "Forklift",
		"quantity":     1,
	})
	require.Equal(t, http.StatusCreated, status)

	status, moved := doJSON(t, srv, http.MethodPatch, "/api/v1/items/"+item["id"].(string), token, map[string]any{
		"departmentId": destID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, destID, moved["departmentId"])

	status, source := doJSON(t, srv, http.MethodGet, "/api/v1/departments/"+sourceID, token)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, source["itemCount"])

	status, destAfter := doJSON(t, srv, http.MethodGet, "/api/v1/departments/"+destID, token)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, destAfter["itemCount"])

	// The feed records the transfer with the destination name snapshot.
	status, activity := doJSONList(t, srv, http.MethodGet, "/api/v1/activity", token)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, activity)
	assert.Equal(t, "transferred", activity[0]["action"])
	assert.Equal(t, "Warehouse", activity[0]["departmentName"])
}

func TestE2E_DashboardAggregates(t *testing.T) {
	srv := newTestServer(t)

	_, token := registerCompany(t, srv, "dash")
	deptID := defaultDepartmentID(t, srv, token)

	for _, name := range []string{"A", "B", "C"} {
		status, _ := doJSON(t, srv, http.MethodPost, "/api/v1/items", token, map[string]any{
			"departmentId": deptID,
			"name":         name,
			"quantity":     1,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, dash := doJSON(t, srv, http.MethodGet, "/api/v1/dashboard", token)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, dash["totalItems"])
	assert.EqualValues(t, 3, dash["itemsThisMonth"])
	assert.EqualValues(t, 1, dash["departmentCount"])

	recent := dash["recentActivity"].([]any)
	assert.Len(t, recent, 3)
}

func TestE2E_StagedOperationsAnswer501(t *testing.T) {
	srv := newTestServer(t)

	_, token := registerCompany(t, srv, "staged")
	deptID := defaultDepartmentID(t, srv, token)

	status, resp := doJSON(t, srv, http.MethodDelete, "/api/v1/departments/"+deptID, token, nil)
	require.Equal(t, http.StatusNotImplemented, status)
	assert.Equal(t, "operation unavailable", resp["error"])

	status, resp = doJSON(t, srv, http.MethodPost, "/api/v1/users/invite", token, map[string]any{
		"email": "new@staged.example.com",
		"role":  "employee",
	})
	require.Equal(t, http.StatusNotImplemented, status)
	assert.Equal(t, "operation unavailable", resp["error"])
}
