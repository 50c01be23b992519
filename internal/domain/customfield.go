package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomField is a company-defined extra attribute for inventory items.
// DepartmentID nil means the field applies company-wide; a department-scoped
// field overrides a company-wide field of the same name for items in that
// department.
type CustomField struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	DepartmentID *uuid.UUID
	Name         string
	Type         FieldType
	// Options is only meaningful for FieldTypeSelect.
	Options   []string
	Required  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveFields resolves the field set for a department: department-scoped
// definitions shadow company-wide ones with the same name. Order is not
// specified.
func EffectiveFields(fields []CustomField, deptID uuid.UUID) []CustomField {
	byName := make(map[string]CustomField, len(fields))
	for _, f := range fields {
		if f.DepartmentID == nil {
			if _, ok := byName[f.Name]; !ok {
				byName[f.Name] = f
			}
			continue
		}
		if *f.DepartmentID == deptID {
			byName[f.Name] = f
		}
	}
	out := make([]CustomField, 0, len(byName))
	for _, f := range byName {
		out = append(out, f)
	}
	return out
}
