package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// JWTManager handles access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the tenant identity. The
// token carries everything the policy layer needs, so request handling never
// re-reads the user row.
type accessClaims struct {
	jwt.RegisteredClaims
	CompanyID   string   `json:"cid"`
	Role        string   `json:"role"`
	Departments []string `json:"deps,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT for the given identity.
func (m *JWTManager) GenerateAccessToken(id domain.Identity) (string, error) {
	now := time.Now()

	deps := make([]string, 0, len(id.DepartmentIDs))
	for _, d := range id.DepartmentIDs {
		deps = append(deps, d.String())
	}

	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		CompanyID:   id.CompanyID.String(),
		Role:        id.Role.String(),
		Departments: deps,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates an access token, returning the
// identity it carries.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return domain.Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}
	companyID, err := uuid.Parse(claims.CompanyID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("invalid company UUID: %w", err)
	}
	role := domain.Role(claims.Role)
	if !role.IsValid() {
		return domain.Identity{}, fmt.Errorf("invalid role %q", claims.Role)
	}

	deps := make([]uuid.UUID, 0, len(claims.Departments))
	for _, raw := range claims.Departments {
		d, err := uuid.Parse(raw)
		if err != nil {
			return domain.Identity{}, fmt.Errorf("invalid department UUID: %w", err)
		}
		deps = append(deps, d)
	}

	return domain.Identity{
		UserID:        userID,
		CompanyID:     companyID,
		Role:          role,
		DepartmentIDs: deps,
	}, nil
}
