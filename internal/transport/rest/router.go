package rest

import (
	"net/http"

	"github.com/akulikova/stockroom-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Account     *AccountHandler
	Department  *DepartmentHandler
	Item        *ItemHandler
	CustomField *CustomFieldHandler
	Staff       *StaffHandler
	Reporting   *ReportingHandler
	Health      *HealthHandler
	Metrics     http.Handler
}

// NewRouter wires all REST routes. Auth endpoints and probes are public;
// everything under /api/v1 besides auth requires an authenticated identity.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("POST /api/v1/auth/register", h.Account.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Account.Login)

	authed := middleware.RequireAuth()
	protect := func(fn http.HandlerFunc) http.Handler { return authed(fn) }

	mux.Handle("GET /api/v1/company", protect(h.Account.GetCompany))
	mux.Handle("PATCH /api/v1/company/asset-pattern", protect(h.Account.UpdateAssetPattern))
	mux.Handle("POST /api/v1/company/subscription", protect(h.Account.ChangeSubscription))

	mux.Handle("POST /api/v1/departments", protect(h.Department.Create))
	mux.Handle("GET /api/v1/departments", protect(h.Department.List))
	mux.Handle("GET /api/v1/departments/{id}", protect(h.Department.Get))
	mux.Handle("PATCH /api/v1/departments/{id}", protect(h.Department.Rename))
	mux.Handle("DELETE /api/v1/departments/{id}", protect(h.Department.Delete))
	mux.Handle("POST /api/v1/departments/{id}/reconcile", protect(h.Department.Reconcile))

	mux.Handle("POST /api/v1/items", protect(h.Item.Create))
	mux.Handle("GET /api/v1/items", protect(h.Item.List))
	mux.Handle("GET /api/v1/items/{id}", protect(h.Item.Get))
	mux.Handle("PATCH /api/v1/items/{id}", protect(h.Item.Update))
	mux.Handle("DELETE /api/v1/items/{id}", protect(h.Item.Delete))

	mux.Handle("POST /api/v1/custom-fields", protect(h.CustomField.Create))
	mux.Handle("GET /api/v1/custom-fields", protect(h.CustomField.List))
	mux.Handle("DELETE /api/v1/custom-fields/{id}", protect(h.CustomField.Delete))

	mux.Handle("GET /api/v1/users", protect(h.Staff.ListUsers))
	mux.Handle("POST /api/v1/users/invite", protect(h.Staff.InviteUser))
	mux.Handle("GET /api/v1/users/{id}/departments", protect(h.Staff.Memberships))
	mux.Handle("PUT /api/v1/users/{id}/departments/{deptId}", protect(h.Staff.AssignDepartment))
	mux.Handle("DELETE /api/v1/users/{id}/departments/{deptId}", protect(h.Staff.UnassignDepartment))

	mux.Handle("GET /api/v1/activity", protect(h.Reporting.ListActivity))
	mux.Handle("GET /api/v1/dashboard", protect(h.Reporting.Dashboard))

	return mux
}
