// Package policy decides whether a caller may perform an operation on a
// department or inventory item. It is stateless: every decision is a pure
// function of the caller identity and the target rows.
//
// Cross-company access is always checked first and denied as ErrNotFound so
// that the existence of another company's data never leaks. Role and
// membership checks come after.
package policy

import (
	"fmt"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// Forbidden reasons. Both unwrap to domain.ErrForbidden; the message is the
// only detail a caller is allowed to see.
var (
	ErrAdminRequired      = fmt.Errorf("%w: admin required", domain.ErrForbidden)
	ErrNoDepartmentAccess = fmt.Errorf("%w: no department access", domain.ErrForbidden)
)

// CanViewDepartment allows admins and members of the department.
func CanViewDepartment(id domain.Identity, dept *domain.Department) error {
	if dept.CompanyID != id.CompanyID {
		return fmt.Errorf("department %s: %w", dept.ID, domain.ErrNotFound)
	}
	if !id.HasDepartment(dept.ID) {
		return ErrNoDepartmentAccess
	}
	return nil
}

// CanManageDepartment covers department rename and (once enabled) deletion.
// Admin only, after the tenant check.
func CanManageDepartment(id domain.Identity, dept *domain.Department) error {
	if dept.CompanyID != id.CompanyID {
		return fmt.Errorf("department %s: %w", dept.ID, domain.ErrNotFound)
	}
	if !id.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// CanCreateDepartment is an admin-only right.
func CanCreateDepartment(id domain.Identity) error {
	if !id.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// CanManageCompany covers admin-only company management: custom field
// definitions, counter reconciliation, user administration.
func CanManageCompany(id domain.Identity) error {
	if !id.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// CanCreateItem requires membership in the target department; admins always
// pass.
func CanCreateItem(id domain.Identity, dept *domain.Department) error {
	if dept.CompanyID != id.CompanyID {
		return fmt.Errorf("department %s: %w", dept.ID, domain.ErrNotFound)
	}
	if !id.HasDepartment(dept.ID) {
		return ErrNoDepartmentAccess
	}
	return nil
}

// CanViewItem allows admins and members of the item's current department.
func CanViewItem(id domain.Identity, item *domain.InventoryItem) error {
	if item.CompanyID != id.CompanyID {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrNotFound)
	}
	if !id.HasDepartment(item.DepartmentID) {
		return ErrNoDepartmentAccess
	}
	return nil
}

// CanUpdateItem requires membership in the item's *current* department.
// Moving the item additionally requires CanCreateItem on the destination,
// which the service checks separately.
func CanUpdateItem(id domain.Identity, item *domain.InventoryItem) error {
	if item.CompanyID != id.CompanyID {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrNotFound)
	}
	if !id.HasDepartment(item.DepartmentID) {
		return ErrNoDepartmentAccess
	}
	return nil
}

// CanDeleteItem is admin-only. Employees never delete items, regardless of
// membership.
func CanDeleteItem(id domain.Identity, item *domain.InventoryItem) error {
	if item.CompanyID != id.CompanyID {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrNotFound)
	}
	if !id.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}
