package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnknownName is recorded in an activity snapshot when the display-name
// lookup fails. Cosmetic lookups never abort the mutation they decorate.
const UnknownName = "Unknown"

// ActivityLog is an immutable audit entry for one inventory mutation.
//
// AssetID, ItemName, DepartmentName and UserName are denormalized snapshots
// taken at write time: later renames or deletions of the referenced rows do
// not retroactively change history. Entries are never updated or deleted.
type ActivityLog struct {
	ID             uuid.UUID
	CompanyID      uuid.UUID
	Action         ActivityAction
	ItemID         uuid.UUID
	AssetID        string
	ItemName       string
	DepartmentName string
	UserID         uuid.UUID
	UserName       string
	CreatedAt      time.Time
}
