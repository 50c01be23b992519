//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_AnonymousIsRejected(t *testing.T) {
	srv := newTestServer(t)

	status, _ := doJSONList(t, srv, http.MethodGet, "/api/v1/items", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestE2E_GarbageTokenIsRejected(t *testing.T) {
	srv := newTestServer(t)

	status, _ := doJSONList(t, srv, http.MethodGet, "/api/v1/items", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
}

// TestE2E_TenantIsolation verifies that one company's rows are invisible to
// another company, reading as 404 rather than 403.
func TestE2E_TenantIsolation(t *testing.T) {
	srv := newTestServer(t)

	_, tokenA := registerCompany(t, srv, "alpha")
	_, tokenB := registerCompany(t, srv, "beta")
	deptA := defaultDepartmentID(t, srv, tokenA)

	status, item := doJSON(t, srv, http.MethodPost, "/api/v1/items", tokenA, map[string]any{
		"departmentId": deptA,
		"name":         "Secret Gadget",
		"quantity":     1,
	})
	require.Equal(t, http.StatusCreated, status)
	itemID := item["id"].(string)

	// Company B cannot see A's item or department, by id or in lists.
	status, _ = doJSON(t, srv, http.MethodGet, "/api/v1/items/"+itemID, tokenB)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, srv, http.MethodGet, "/api/v1/departments/"+deptA, tokenB)
	assert.Equal(t, http.StatusNotFound, status)

	status, items := doJSONList(t, srv, http.MethodGet, "/api/v1/items", tokenB)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, items)

	// B's activity feed has no trace of A's mutation.
	status, activity := doJSONList(t, srv, http.MethodGet, "/api/v1/activity", tokenB)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, activity)
}

// TestE2E_CustomFieldShadowing checks that a department-scoped definition
// shadows the company-wide one with the same name.
func TestE2E_CustomFieldShadowing(t *testing.T) {
	srv := newTestServer(t)

	_, token := registerCompany(t, srv, "fields")
	deptID := defaultDepartmentID(t, srv, token)

	status, _ := doJSON(t, srv, http.MethodPost, "/api/v1/custom-fields", token, map[string]any{
		"name": "Serial Number",
		"type": "text",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = doJSON(t, srv, http.MethodPost, "/api/v1/custom-fields", token, map[string]any{
		"departmentId": deptID,
		"name":         "Serial Number",
		"type":         "select",
		"options":      []string{"old", "new"},
	})
	require.Equal(t, http.StatusCreated, status)

	status, effective := doJSONList(t, srv, http.MethodGet, "/api/v1/custom-fields?department_id="+deptID, token)
	require.Equal(t, http.StatusOK, status)

	var serialTypes []string
	for _, f := range effective {
		if f["name"] == "Serial Number" {
			serialTypes = append(serialTypes, f["type"].(string))
		}
	}
	require.Len(t, serialTypes, 1, "department-scoped field must shadow the company-wide one")
	assert.Equal(t, "select", serialTypes[0])
}
