package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// staffService defines the minimal interface needed by StaffHandler.
type staffService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	Memberships(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AssignDepartment(ctx context.Context, userID, departmentID uuid.UUID) error
	UnassignDepartment(ctx context.Context, userID, departmentID uuid.UUID) error
	InviteUser(ctx context.Context, email string, role domain.Role) error
}

// StaffHandler serves user management REST endpoints.
type StaffHandler struct {
	svc staffService
	log *slog.Logger
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc staffService, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, log: logger.With("handler", "staff")}
}

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListUsers handles GET /api/v1/users.
func (h *StaffHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

// Memberships handles GET /api/v1/users/{id}/departments.
func (h *StaffHandler) Memberships(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	deptIDs, err := h.svc.Memberships(r.Context(), userID)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	out := make([]string, 0, len(deptIDs))
	for _, id := range deptIDs {
		out = append(out, id.String())
	}
	writeJSON(w, http.StatusOK, map[string][]string{"departmentIds": out})
}

// AssignDepartment handles PUT /api/v1/users/{id}/departments/{deptId}.
func (h *StaffHandler) AssignDepartment(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	deptID, ok := pathUUID(w, r, "deptId")
	if !ok {
		return
	}

	if err := h.svc.AssignDepartment(r.Context(), userID, deptID); err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnassignDepartment handles DELETE /api/v1/users/{id}/departments/{deptId}.
func (h *StaffHandler) UnassignDepartment(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	deptID, ok := pathUUID(w, r, "deptId")
	if !ok {
		return
	}

	if err := h.svc.UnassignDepartment(r.Context(), userID, deptID); err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// InviteUser handles POST /api/v1/users/invite. The operation is staged out
// and answers 501 for authorized callers.
func (h *StaffHandler) InviteUser(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.InviteUser(r.Context(), req.Email, domain.Role(req.Role)); err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
