package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/service/department"
)

// departmentService defines the minimal interface needed by DepartmentHandler.
type departmentService interface {
	Create(ctx context.Context, input department.CreateInput) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Get(ctx context.Context, departmentID uuid.UUID) (*domain.Department, error)
	Rename(ctx context.Context, departmentID uuid.UUID, input department.RenameInput) (*domain.Department, error)
	Delete(ctx context.Context, departmentID uuid.UUID) error
	Reconcile(ctx context.Context, departmentID uuid.UUID) (*domain.Department, error)
}

// DepartmentHandler serves department REST endpoints.
type DepartmentHandler struct {
	svc departmentService
	log *slog.Logger
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler(svc departmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{svc: svc, log: logger.With("handler", "department")}
}

type departmentRequest struct {
	Name string `json:"name"`
}

type departmentResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ItemCount    int       `json:"itemCount"`
	CapacityUsed int       `json:"capacityUsed"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Create handles POST /api/v1/departments.
func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req departmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	dept, err := h.svc.Create(r.Context(), department.CreateInput{Name: req.Name})
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDepartmentResponse(dept))
}

// List handles GET /api/v1/departments.
func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	depts, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	out := make([]departmentResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, toDepartmentResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/departments/{id}.
func (h *DepartmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	dept, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

// Rename handles PATCH /api/v1/departments/{id}.
func (h *DepartmentHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req departmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	dept, err := h.svc.Rename(r.Context(), id, department.RenameInput{Name: req.Name})
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

// Delete handles DELETE /api/v1/departments/{id}. The operation is staged
// out and answers 501 for authorized callers.
func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reconcile handles POST /api/v1/departments/{id}/reconcile.
func (h *DepartmentHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	dept, err := h.svc.Reconcile(r.Context(), id)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

func toDepartmentResponse(d *domain.Department) departmentResponse {
	return departmentResponse{
		ID:           d.ID.String(),
		Name:         d.Name,
		ItemCount:    d.ItemCount,
		CapacityUsed: d.CapacityUsed,
		CreatedAt:    d.CreatedAt,
	}
}
