package domain

import "github.com/google/uuid"

// ItemFilter narrows item list results. Nil fields mean "no filter".
// Lists are always additionally scoped by company id; the filter never
// widens beyond the caller's tenant.
type ItemFilter struct {
	DepartmentID *uuid.UUID
	Status       *ItemStatus
}
