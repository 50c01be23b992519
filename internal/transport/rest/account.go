package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/service/account"
)

// accountService defines the minimal interface needed by AccountHandler.
type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*account.RegisterResult, error)
	Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)
	GetCompany(ctx context.Context) (*domain.Company, error)
	UpdateAssetPattern(ctx context.Context, input account.UpdateAssetPatternInput) error
	ChangeSubscription(ctx context.Context, tier domain.SubscriptionTier) error
}

// AccountHandler serves registration, login, and company settings endpoints.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type registerRequest struct {
	CompanyName  string `json:"companyName"`
	AssetPattern string `json:"assetPattern,omitempty"`
	AdminName    string `json:"adminName"`
	AdminEmail   string `json:"adminEmail"`
	Password     string `json:"password"`
}

type loginRequest struct {
	CompanyID string `json:"companyId"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type updatePatternRequest struct {
	Pattern string `json:"pattern"`
}

type changeSubscriptionRequest struct {
	Tier string `json:"tier"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type companyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AssetPattern string    `json:"assetPattern"`
	Tier         string    `json:"tier"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Register handles POST /api/v1/auth/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), account.RegisterInput{
		CompanyName:  req.CompanyName,
		AssetPattern: req.AssetPattern,
		AdminName:    req.AdminName,
		AdminEmail:   req.AdminEmail,
		Password:     req.Password,
	})
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"company": toCompanyResponse(result.Company),
		"token":   result.Token,
		"user":    toUserResponse(result.Admin),
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), account.LoginInput{
		CompanyID: req.CompanyID,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// GetCompany handles GET /api/v1/company.
func (h *AccountHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.svc.GetCompany(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompanyResponse(company))
}

// UpdateAssetPattern handles PATCH /api/v1/company/asset-pattern.
func (h *AccountHandler) UpdateAssetPattern(w http.ResponseWriter, r *http.Request) {
	var req updatePatternRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.UpdateAssetPattern(r.Context(), account.UpdateAssetPatternInput{Pattern: req.Pattern}); err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChangeSubscription handles POST /api/v1/company/subscription.
func (h *AccountHandler) ChangeSubscription(w http.ResponseWriter, r *http.Request) {
	var req changeSubscriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.ChangeSubscription(r.Context(), domain.SubscriptionTier(req.Tier)); err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		AssetPattern: c.AssetPattern,
		Tier:         string(c.Tier),
		CreatedAt:    c.CreatedAt,
	}
}
