package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAssetPattern is applied at registration when the company does not
// supply its own pattern.
const DefaultAssetPattern = "ITEM-####"

// DefaultDepartmentName is the department every company starts with.
const DefaultDepartmentName = "General"

// Company is a tenant: the unit of data partitioning. Every other entity
// carries a company id and no cross-company reference is ever valid.
type Company struct {
	ID           uuid.UUID
	Name         string
	AssetPattern string
	// AssetCounter is the next number to issue. It starts at 1 and is only
	// ever advanced by an atomic increment in the store, so two concurrent
	// item creations can never observe the same value.
	AssetCounter int64
	Tier         SubscriptionTier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the authenticated caller context supplied by the auth layer.
// The core trusts it without re-verifying credentials.
type Identity struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      Role
	// DepartmentIDs is the membership set. Only meaningful for employees;
	// admins implicitly have access to every department in their company.
	DepartmentIDs []uuid.UUID
}

// IsAdmin reports whether the caller holds the admin role.
func (id Identity) IsAdmin() bool { return id.Role == RoleAdmin }

// HasDepartment reports whether the caller holds a membership edge for the
// given department. Admins always do.
func (id Identity) HasDepartment(deptID uuid.UUID) bool {
	if id.IsAdmin() {
		return true
	}
	for _, d := range id.DepartmentIDs {
		if d == deptID {
			return true
		}
	}
	return false
}
