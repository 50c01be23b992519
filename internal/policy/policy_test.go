package policy

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

func admin(companyID uuid.UUID) domain.Identity {
	return domain.Identity{UserID: uuid.New(), CompanyID: companyID, Role: domain.RoleAdmin}
}

func employee(companyID uuid.UUID, depts ...uuid.UUID) domain.Identity {
	return domain.Identity{UserID: uuid.New(), CompanyID: companyID, Role: domain.RoleEmployee, DepartmentIDs: depts}
}

func TestCanViewDepartment(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	dept := &domain.Department{ID: uuid.New(), CompanyID: companyID}

	if err := CanViewDepartment(admin(companyID), dept); err != nil {
		t.Errorf("admin should view any department in own company: %v", err)
	}
	if err := CanViewDepartment(employee(companyID, dept.ID), dept); err != nil {
		t.Errorf("member employee should view department: %v", err)
	}

	err := CanViewDepartment(employee(companyID), dept)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-member employee: got %v, want ErrForbidden", err)
	}
}

func TestCrossCompanyIsNotFound_NeverForbidden(t *testing.T) {
	t.Parallel()

	dept := &domain.Department{ID: uuid.New(), CompanyID: uuid.New()}
	item := &domain.InventoryItem{ID: uuid.New(), CompanyID: dept.CompanyID, DepartmentID: dept.ID}
	stranger := admin(uuid.New()) // admin of another company

	checks := []error{
		CanViewDepartment(stranger, dept),
		CanCreateItem(stranger, dept),
		CanViewItem(stranger, item),
		CanUpdateItem(stranger, item),
		CanDeleteItem(stranger, item),
	}
	for i, err := range checks {
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("check %d: got %v, want ErrNotFound", i, err)
		}
		if errors.Is(err, domain.ErrForbidden) {
			t.Errorf("check %d: cross-company denial must not reveal existence via ErrForbidden", i)
		}
	}
}

func TestCanCreateDepartment(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	if err := CanCreateDepartment(admin(companyID)); err != nil {
		t.Errorf("admin should create departments: %v", err)
	}

	err := CanCreateDepartment(employee(companyID))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("employee: got %v, want ErrForbidden", err)
	}
	if err.Error() != "forbidden: admin required" {
		t.Errorf("denial reason: got %q, want %q", err.Error(), "forbidden: admin required")
	}
}

func TestCanCreateItem_MembershipMatrix(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	deptD := &domain.Department{ID: uuid.New(), CompanyID: companyID}
	deptOther := &domain.Department{ID: uuid.New(), CompanyID: companyID}

	member := employee(companyID, deptD.ID)

	if err := CanCreateItem(member, deptD); err != nil {
		t.Errorf("employee with membership in D should create in D: %v", err)
	}

	err := CanCreateItem(member, deptOther)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("employee without membership in D': got %v, want ErrForbidden", err)
	}
	if err != nil && err.Error() != "forbidden: no department access" {
		t.Errorf("denial reason: got %q, want %q", err.Error(), "forbidden: no department access")
	}

	if err := CanCreateItem(admin(companyID), deptOther); err != nil {
		t.Errorf("admin should create anywhere in own company: %v", err)
	}
}

func TestCanUpdateItem_UsesCurrentDepartment(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	currentDept := uuid.New()
	otherDept := uuid.New()
	item := &domain.InventoryItem{ID: uuid.New(), CompanyID: companyID, DepartmentID: currentDept}

	if err := CanUpdateItem(employee(companyID, currentDept), item); err != nil {
		t.Errorf("member of current department should update: %v", err)
	}

	err := CanUpdateItem(employee(companyID, otherDept), item)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("member of a different department: got %v, want ErrForbidden", err)
	}
}

func TestCanDeleteItem_AdminOnly(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	dept := uuid.New()
	item := &domain.InventoryItem{ID: uuid.New(), CompanyID: companyID, DepartmentID: dept}

	if err := CanDeleteItem(admin(companyID), item); err != nil {
		t.Errorf("admin should delete items: %v", err)
	}

	// Even a member of the item's department cannot delete.
	err := CanDeleteItem(employee(companyID, dept), item)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("employee: got %v, want ErrForbidden", err)
	}
}
