package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a member of a company. Email is unique within the company,
// case-insensitive. The password credential is stored as a bcrypt hash and
// never leaves the auth layer.
type User struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Name         string
	Email        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DepartmentMembership is the edge granting an employee visibility and write
// access to a department. Admins bypass these edges entirely.
type DepartmentMembership struct {
	UserID       uuid.UUID
	DepartmentID uuid.UUID
	CreatedAt    time.Time
}
