package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is a tracked asset. The asset id is generated from the
// company's pattern at creation and is immutable afterwards; it is unique
// within the company. DepartmentID always references a department owned by
// the same company.
type InventoryItem struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	DepartmentID uuid.UUID
	AssetID      string
	Name         string
	Quantity     int
	// UnitPrice is in minor currency units (cents). nil = not set.
	UnitPrice    *int64
	Location     *string
	PurchaseDate *time.Time
	Status       ItemStatus
	// CustomValues holds the custom-field payload keyed by field name.
	CustomValues map[string]any
	CreatedBy    uuid.UUID
	UpdatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ItemUpdateParams carries a partial update. nil pointers mean "leave
// unchanged"; a non-nil DepartmentID that differs from the item's current
// department makes the update a transfer.
type ItemUpdateParams struct {
	Name         *string
	Quantity     *int
	UnitPrice    *int64
	Location     *string
	PurchaseDate *time.Time
	Status       *ItemStatus
	DepartmentID *uuid.UUID
	CustomValues map[string]any
}

// IsEmpty reports whether the update changes nothing.
func (p ItemUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Quantity == nil && p.UnitPrice == nil &&
		p.Location == nil && p.PurchaseDate == nil && p.Status == nil &&
		p.DepartmentID == nil && p.CustomValues == nil
}
