package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "item", uuid.Nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapError(pgx.ErrNoRows, "item", uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	err := MapError(context.Canceled, "item", uuid.New())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatal("context errors must not be mapped to domain errors")
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23505", ConstraintName: "users_company_email_key"}, "user", uuid.New())
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMapError_AssetIDUniqueViolationIsConflict(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23505", ConstraintName: "items_company_asset_id_key"}, "item", uuid.New())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestMapError_ForeignKeyViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23503"}, "item", uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_CheckViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23514"}, "item", uuid.New())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestMapError_SerializationFailure(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "40001"}, "company", uuid.New())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
