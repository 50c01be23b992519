package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/service/reporting"
)

// reportingService defines the minimal interface needed by ReportingHandler.
type reportingService interface {
	ListActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error)
	GetDashboardSummary(ctx context.Context) (*reporting.DashboardSummary, error)
}

// ReportingHandler serves the activity feed and dashboard endpoints.
type ReportingHandler struct {
	svc reportingService
	log *slog.Logger
}

// NewReportingHandler creates a ReportingHandler.
func NewReportingHandler(svc reportingService, logger *slog.Logger) *ReportingHandler {
	return &ReportingHandler{svc: svc, log: logger.With("handler", "reporting")}
}

type activityResponse struct {
	ID             string    `json:"id"`
	Action         string    `json:"action"`
	ItemID         string    `json:"itemId"`
	AssetID        string    `json:"assetId"`
	ItemName       string    `json:"itemName"`
	DepartmentName string    `json:"departmentName"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	CreatedAt      time.Time `json:"createdAt"`
}

type departmentStatsResponse struct {
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	ItemCount      int    `json:"itemCount"`
	CapacityUsed   int    `json:"capacityUsed"`
}

type dashboardResponse struct {
	TotalItems      int                       `json:"totalItems"`
	ItemsThisMonth  int                       `json:"itemsThisMonth"`
	LowStockItems   int                       `json:"lowStockItems"`
	DepartmentCount int                       `json:"departmentCount"`
	RecentActivity  []activityResponse        `json:"recentActivity"`
	Departments     []departmentStatsResponse `json:"departments"`
}

// ListActivity handles GET /api/v1/activity with an optional limit query
// parameter. The service clamps the limit to the configured cap.
func (h *ReportingHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	logs, err := h.svc.ListActivity(r.Context(), limit)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	out := make([]activityResponse, 0, len(logs))
	for _, entry := range logs {
		out = append(out, toActivityResponse(entry))
	}
	writeJSON(w, http.StatusOK, out)
}

// Dashboard handles GET /api/v1/dashboard.
func (h *ReportingHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetDashboardSummary(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	resp := dashboardResponse{
		TotalItems:      summary.TotalItems,
		ItemsThisMonth:  summary.ItemsThisMonth,
		LowStockItems:   summary.LowStockItems,
		DepartmentCount: summary.DepartmentCount,
		RecentActivity:  make([]activityResponse, 0, len(summary.RecentActivity)),
		Departments:     make([]departmentStatsResponse, 0, len(summary.Departments)),
	}
	for _, entry := range summary.RecentActivity {
		resp.RecentActivity = append(resp.RecentActivity, toActivityResponse(entry))
	}
	for _, stats := range summary.Departments {
		resp.Departments = append(resp.Departments, departmentStatsResponse{
			DepartmentID:   stats.DepartmentID.String(),
			DepartmentName: stats.DepartmentName,
			ItemCount:      stats.ItemCount,
			CapacityUsed:   stats.CapacityUsed,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toActivityResponse(entry domain.ActivityLog) activityResponse {
	return activityResponse{
		ID:             entry.ID.String(),
		Action:         string(entry.Action),
		ItemID:         entry.ItemID.String(),
		AssetID:        entry.AssetID,
		ItemName:       entry.ItemName,
		DepartmentName: entry.DepartmentName,
		UserID:         entry.UserID.String(),
		UserName:       entry.UserName,
		CreatedAt:      entry.CreatedAt,
	}
}
