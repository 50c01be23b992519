package customfield

import (
	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// CreateInput holds the parameters for defining a custom field. A nil
// DepartmentID makes the field company-wide.
type CreateInput struct {
	DepartmentID *uuid.UUID
	Name         string
	Type         domain.FieldType
	Options      []string
	Required     bool
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if i.Type == domain.FieldTypeSelect && len(i.Options) == 0 {
		errs = append(errs, domain.FieldError{Field: "options", Message: "required for select fields"})
	}
	if i.Type != domain.FieldTypeSelect && len(i.Options) > 0 {
		errs = append(errs, domain.FieldError{Field: "options", Message: "only allowed for select fields"})
	}
	if len(i.Options) > 50 {
		errs = append(errs, domain.FieldError{Field: "options", Message: "too many (max 50)"})
	}
	if i.DepartmentID != nil && *i.DepartmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "department_id", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
