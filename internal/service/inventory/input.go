package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// CreateItemInput holds the parameters for creating an inventory item. The
// asset id is never supplied by the caller; it is issued from the company's
// pattern.
type CreateItemInput struct {
	DepartmentID uuid.UUID
	Name         string
	Quantity     int
	UnitPrice    *int64
	Location     *string
	PurchaseDate *time.Time
	Status       domain.ItemStatus // blank = active
	CustomValues map[string]any
}

// Validate checks all fields and collects all errors.
func (i *CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.DepartmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "department_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}
	if i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be >= 1"})
	}
	if i.UnitPrice != nil && *i.UnitPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "unit_price", Message: "must be >= 0"})
	}
	if i.Location != nil && len(*i.Location) > 200 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long (max 200)"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateItemInput holds a partial update. See domain.ItemUpdateParams for
// the nil-means-unchanged convention.
type UpdateItemInput struct {
	Params domain.ItemUpdateParams
}

// Validate checks all fields and collects all errors.
func (i *UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	p := i.Params
	if p.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "params", Message: "at least one field required"})
	}
	if p.Name != nil {
		if *p.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(*p.Name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
		}
	}
	if p.Quantity != nil && *p.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be >= 1"})
	}
	if p.UnitPrice != nil && *p.UnitPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "unit_price", Message: "must be >= 0"})
	}
	if p.Location != nil && len(*p.Location) > 200 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long (max 200)"})
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if p.DepartmentID != nil && *p.DepartmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "department_id", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
