package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// UserRepo is the in-memory user repository.
type UserRepo struct {
	s *Store
}

// Create inserts a new user. Email must already be normalized; a duplicate
// within the company maps to domain.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	defer r.s.enter(ctx)()

	for _, existing := range r.s.users {
		if existing.CompanyID == u.CompanyID && existing.Email == u.Email {
			return nil, fmt.Errorf("user %q: %w", u.Email, domain.ErrAlreadyExists)
		}
	}

	created := *u
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.s.users[created.ID] = created
	return &created, nil
}

// GetByID returns a user by primary key; tenant scoping is the caller's
// responsibility.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	defer r.s.enter(ctx)()

	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// GetByEmail returns a user by company and normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*domain.User, error) {
	defer r.s.enter(ctx)()

	for _, u := range r.s.users {
		if u.CompanyID == companyID && u.Email == email {
			uu := u
			return &uu, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

// ListByCompany returns the company's users ordered by name.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.User, error) {
	defer r.s.enter(ctx)()

	result := []*domain.User{}
	for _, u := range r.s.users {
		if u.CompanyID == companyID {
			uu := u
			result = append(result, &uu)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

// Memberships returns the department ids the user holds membership edges for.
func (r *UserRepo) Memberships(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	defer r.s.enter(ctx)()

	return append([]uuid.UUID{}, r.s.memberships[userID]...), nil
}

// AddMembership grants an employee access to a department. Idempotent.
func (r *UserRepo) AddMembership(ctx context.Context, userID, departmentID uuid.UUID) error {
	defer r.s.enter(ctx)()

	if slices.Contains(r.s.memberships[userID], departmentID) {
		return nil
	}
	r.s.memberships[userID] = append(append([]uuid.UUID{}, r.s.memberships[userID]...), departmentID)

	return nil
}

// RemoveMembership revokes a membership edge. Not an error if absent.
func (r *UserRepo) RemoveMembership(ctx context.Context, userID, departmentID uuid.UUID) error {
	defer r.s.enter(ctx)()

	current := r.s.memberships[userID]
	next := make([]uuid.UUID, 0, len(current))
	for _, id := range current {
		if id != departmentID {
			next = append(next, id)
		}
	}
	r.s.memberships[userID] = next

	return nil
}
