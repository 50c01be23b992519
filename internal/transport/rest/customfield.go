package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/service/customfield"
)

// customFieldService defines the minimal interface needed by CustomFieldHandler.
type customFieldService interface {
	Create(ctx context.Context, input customfield.CreateInput) (*domain.CustomField, error)
	List(ctx context.Context, departmentID *uuid.UUID) ([]domain.CustomField, error)
	Delete(ctx context.Context, fieldID uuid.UUID) error
}

// CustomFieldHandler serves custom field definition REST endpoints.
type CustomFieldHandler struct {
	svc customFieldService
	log *slog.Logger
}

// NewCustomFieldHandler creates a CustomFieldHandler.
func NewCustomFieldHandler(svc customFieldService, logger *slog.Logger) *CustomFieldHandler {
	return &CustomFieldHandler{svc: svc, log: logger.With("handler", "customfield")}
}

type createFieldRequest struct {
	DepartmentID *string  `json:"departmentId,omitempty"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Options      []string `json:"options,omitempty"`
	Required     bool     `json:"required"`
}

type fieldResponse struct {
	ID           string   `json:"id"`
	DepartmentID *string  `json:"departmentId,omitempty"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Options      []string `json:"options,omitempty"`
	Required     bool     `json:"required"`
}

// Create handles POST /api/v1/custom-fields.
func (h *CustomFieldHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFieldRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := customfield.CreateInput{
		Name:     req.Name,
		Type:     domain.FieldType(req.Type),
		Options:  req.Options,
		Required: req.Required,
	}
	if req.DepartmentID != nil {
		deptID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid departmentId")
			return
		}
		input.DepartmentID = &deptID
	}

	field, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFieldResponse(*field))
}

// List handles GET /api/v1/custom-fields. With a department_id query
// parameter it returns the effective field set for that department.
func (h *CustomFieldHandler) List(w http.ResponseWriter, r *http.Request) {
	var deptID *uuid.UUID
	if raw := r.URL.Query().Get("department_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid department_id")
			return
		}
		deptID = &id
	}

	fields, err := h.svc.List(r.Context(), deptID)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	out := make([]fieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, toFieldResponse(f))
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/v1/custom-fields/{id}.
func (h *CustomFieldHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func toFieldResponse(f domain.CustomField) fieldResponse {
	resp := fieldResponse{
		ID:       f.ID.String(),
		Name:     f.Name,
		Type:     string(f.Type),
		Options:  f.Options,
		Required: f.Required,
	}
	if f.DepartmentID != nil {
		s := f.DepartmentID.String()
		resp.DepartmentID = &s
	}
	return resp
}
