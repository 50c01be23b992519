package domain

import (
	"time"

	"github.com/google/uuid"
)

// Department groups inventory items within a company.
//
// ItemCount and CapacityUsed are denormalized caches of the live items in the
// department, not sources of truth. They are adjusted alongside item
// mutations, clamped at zero, and can always be recomputed from the items
// table (see the reconcile operation).
type Department struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Name         string
	ItemCount    int
	CapacityUsed int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DepartmentStats is the per-department slice of the dashboard summary.
type DepartmentStats struct {
	DepartmentID   uuid.UUID
	DepartmentName string
	ItemCount      int
	CapacityUsed   int
}
