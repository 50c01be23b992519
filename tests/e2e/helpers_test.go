//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akulikova/stockroom-backend/internal/adapter/memory"
	"github.com/akulikova/stockroom-backend/internal/auth"
	"github.com/akulikova/stockroom-backend/internal/config"
	"github.com/akulikova/stockroom-backend/internal/service/account"
	"github.com/akulikova/stockroom-backend/internal/service/customfield"
	"github.com/akulikova/stockroom-backend/internal/service/department"
	"github.com/akulikova/stockroom-backend/internal/service/inventory"
	"github.com/akulikova/stockroom-backend/internal/service/reporting"
	"github.com/akulikova/stockroom-backend/internal/service/staff"
	"github.com/akulikova/stockroom-backend/internal/transport/middleware"
	"github.com/akulikova/stockroom-backend/internal/transport/rest"
)

// newTestServer builds the full HTTP stack over the in-memory store. Each
// call returns an isolated server with its own data.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	store := memory.NewStore()

	invCfg := config.InventoryConfig{
		CapacityUnitPerItem:       10,
		DefaultAssetPattern:       "ITEM-####",
		ActivityListLimit:         50,
		DashboardRecentActivities: 5,
	}

	hasher := auth.NewHasher(4) // minimum cost keeps e2e runs fast
	tokens := auth.NewJWTManager("e2e-secret-key-not-for-production!!", "stockroom", time.Hour)

	accountSvc := account.NewService(logger, store.Companies(), store.Departments(), store.Users(), store, hasher, tokens, invCfg)
	departmentSvc := department.NewService(logger, store.Departments(), store.Items(), store, invCfg)
	inventorySvc := inventory.NewService(logger, store.Companies(), store.Departments(), store.Items(), store.Users(), store.Activity(), store, invCfg)
	reportingSvc := reporting.NewService(logger, store.Activity(), store.Items(), store.Departments(), invCfg)
	customFieldSvc := customfield.NewService(logger, store.CustomFields(), store.Departments())
	staffSvc := staff.NewService(logger, store.Users(), store.Departments())

	router := rest.NewRouter(rest.Handlers{
		Account:     rest.NewAccountHandler(accountSvc, logger),
		Department:  rest.NewDepartmentHandler(departmentSvc, logger),
		Item:        rest.NewItemHandler(inventorySvc, logger),
		CustomField: rest.NewCustomFieldHandler(customFieldSvc, logger),
		Staff:       rest.NewStaffHandler(staffSvc, logger),
		Reporting:   rest.NewReportingHandler(reportingSvc, logger),
		Health:      rest.NewHealthHandler(noopPinger{}, "e2e"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(tokens),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

type noopPinger struct{}

func (noopPinger) Ping(ctx context.Context) error { return nil }

// doJSON sends a JSON request and decodes the JSON response body into a
// generic map. A nil body sends no payload.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints returning a JSON array.
func doJSONList(t *testing.T, srv *httptest.Server, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// registerCompany registers a fresh company and returns (companyID, token).
func registerCompany(t *testing.T, srv *httptest.Server, name string) (string, string) {
	t.Helper()

	status, resp := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"companyName": name,
		"adminName":   "Admin " + name,
		"adminEmail":  fmt.Sprintf("admin@%s.example.com", name),
		"password":    "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, status, "register response: %v", resp)

	company := resp["company"].(map[string]any)
	return company["id"].(string), resp["token"].(string)
}

// defaultDepartmentID returns the id of the "General" department created at
// registration.
func defaultDepartmentID(t *testing.T, srv *httptest.Server, token string) string {
	t.Helper()

	status, depts := doJSONList(t, srv, http.MethodGet, "/api/v1/departments", token)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, depts)
	for _, d := range depts {
		if d["name"] == "General" {
			return d["id"].(string)
		}
	}
	t.Fatal("default General department not found")
	return ""
}
