package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/service/inventory"
)

// inventoryService defines the minimal interface needed by ItemHandler.
type inventoryService interface {
	CreateItem(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, input inventory.UpdateItemInput) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

// ItemHandler serves inventory item REST endpoints.
type ItemHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc inventoryService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "item")}
}

type createItemRequest struct {
	DepartmentID string         `json:"departmentId"`
	Name         string         `json:"name"`
	Quantity     int            `json:"quantity"`
	UnitPrice    *int64         `json:"unitPrice,omitempty"`
	Location     *string        `json:"location,omitempty"`
	PurchaseDate *time.Time     `json:"purchaseDate,omitempty"`
	Status       string         `json:"status,omitempty"`
	CustomValues map[string]any `json:"customValues,omitempty"`
}

type updateItemRequest struct {
	Name         *string        `json:"name,omitempty"`
	Quantity     *int           `json:"quantity,omitempty"`
	UnitPrice    *int64         `json:"unitPrice,omitempty"`
	Location     *string        `json:"location,omitempty"`
	PurchaseDate *time.Time     `json:"purchaseDate,omitempty"`
	Status       *string        `json:"status,omitempty"`
	DepartmentID *string        `json:"departmentId,omitempty"`
	CustomValues map[string]any `json:"customValues,omitempty"`
}

type itemResponse struct {
	ID           string         `json:"id"`
	DepartmentID string         `json:"departmentId"`
	AssetID      string         `json:"assetId"`
	Name         string         `json:"name"`
	Quantity     int            `json:"quantity"`
	UnitPrice    *int64         `json:"unitPrice,omitempty"`
	Location     *string        `json:"location,omitempty"`
	PurchaseDate *time.Time     `json:"purchaseDate,omitempty"`
	Status       string         `json:"status"`
	CustomValues map[string]any `json:"customValues,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Create handles POST /api/v1/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	deptID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid departmentId")
		return
	}

	item, err := h.svc.CreateItem(r.Context(), inventory.CreateItemInput{
		DepartmentID: deptID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Location:     req.Location,
		PurchaseDate: req.PurchaseDate,
		Status:       domain.ItemStatus(req.Status),
		CustomValues: req.CustomValues,
	})
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// Get handles GET /api/v1/items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// List handles GET /api/v1/items with optional department_id and status
// query filters.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.ItemFilter

	if raw := r.URL.Query().Get("department_id"); raw != "" {
		deptID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid department_id")
			return
		}
		filter.DepartmentID = &deptID
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ItemStatus(raw)
		if !status.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = &status
	}

	items, err := h.svc.ListItems(r.Context(), filter)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PATCH /api/v1/items/{id}. A departmentId different from
// the item's current department makes the update a transfer.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	params := domain.ItemUpdateParams{
		Name:         req.Name,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Location:     req.Location,
		PurchaseDate: req.PurchaseDate,
		CustomValues: req.CustomValues,
	}
	if req.Status != nil {
		status := domain.ItemStatus(*req.Status)
		params.Status = &status
	}
	if req.DepartmentID != nil {
		deptID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid departmentId")
			return
		}
		params.DepartmentID = &deptID
	}

	item, err := h.svc.UpdateItem(r.Context(), id, inventory.UpdateItemInput{Params: params})
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /api/v1/items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toItemResponse(item *domain.InventoryItem) itemResponse {
	return itemResponse{
		ID:           item.ID.String(),
		DepartmentID: item.DepartmentID.String(),
		AssetID:      item.AssetID,
		Name:         item.Name,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		Location:     item.Location,
		PurchaseDate: item.PurchaseDate,
		Status:       string(item.Status),
		CustomValues: item.CustomValues,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
