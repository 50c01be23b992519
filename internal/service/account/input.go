package account

import (
	"github.com/akulikova/stockroom-backend/internal/domain"
)

// RegisterInput holds the parameters for registering a new company with its
// first admin user.
type RegisterInput struct {
	CompanyName  string
	AssetPattern string // blank = configured default
	AdminName    string
	AdminEmail   string
	Password     string
}

// Validate checks all fields and collects all errors.
func (i *RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyName == "" {
		errs = append(errs, domain.FieldError{Field: "company_name", Message: "required"})
	} else if len(i.CompanyName) > 200 {
		errs = append(errs, domain.FieldError{Field: "company_name", Message: "too long (max 200)"})
	}
	if len(i.AssetPattern) > 50 {
		errs = append(errs, domain.FieldError{Field: "asset_pattern", Message: "too long (max 50)"})
	}
	if i.AdminName == "" {
		errs = append(errs, domain.FieldError{Field: "admin_name", Message: "required"})
	} else if len(i.AdminName) > 200 {
		errs = append(errs, domain.FieldError{Field: "admin_name", Message: "too long (max 200)"})
	}
	if i.AdminEmail == "" {
		errs = append(errs, domain.FieldError{Field: "admin_email", Message: "required"})
	} else if len(i.AdminEmail) > 320 {
		errs = append(errs, domain.FieldError{Field: "admin_email", Message: "too long (max 320)"})
	}
	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short (min 8)"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long (max 72)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds the sign-in parameters. Email is unique per company, so
// the company id is part of the credential.
type LoginInput struct {
	CompanyID string
	Email     string
	Password  string
}

// Validate checks all fields and collects all errors.
func (i *LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == "" {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateAssetPatternInput holds the parameters for changing the company's
// asset-id pattern.
type UpdateAssetPatternInput struct {
	Pattern string
}

// Validate checks all fields and collects all errors.
func (i *UpdateAssetPatternInput) Validate() error {
	var errs []domain.FieldError

	if i.Pattern == "" {
		errs = append(errs, domain.FieldError{Field: "pattern", Message: "required"})
	} else if len(i.Pattern) > 50 {
		errs = append(errs, domain.FieldError{Field: "pattern", Message: "too long (max 50)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
