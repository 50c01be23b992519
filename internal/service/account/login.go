package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// LoginResult is the outcome of a successful sign-in.
type LoginResult struct {
	User  *domain.User
	Token string
}

// Login verifies the credential and issues an access token carrying the
// caller's identity, role, and department memberships. Any credential
// failure maps to ErrUnauthorized without distinguishing the cause.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	companyID, err := uuid.Parse(input.CompanyID)
	if err != nil {
		return nil, domain.NewValidationError("company_id", "invalid uuid")
	}

	user, err := s.users.GetByEmail(ctx, companyID, domain.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	var memberships []uuid.UUID
	if user.Role == domain.RoleEmployee {
		memberships, err = s.users.Memberships(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("load memberships: %w", err)
		}
	}

	token, err := s.tokens.GenerateAccessToken(domain.Identity{
		UserID:        user.ID,
		CompanyID:     user.CompanyID,
		Role:          user.Role,
		DepartmentIDs: memberships,
	})
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}
