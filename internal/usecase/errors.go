package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared by all services. Handlers map these onto HTTP
// status codes; everything else is treated as an internal error.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPaymentFailed      = errors.New("payment failed")
)

// ValidationError carries per-field messages from request validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// conflictError translates a unique-constraint violation into ErrConflict
// with a message naming what collided. Other errors pass through unchanged.
func conflictError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}

	switch pgErr.ConstraintName {
	case "users_email_key":
		return fmt.Errorf("%w: email already registered", ErrConflict)
	case "class_bookings_user_class_key":
		return fmt.Errorf("%w: class already booked", ErrConflict)
	case "active_memberships_user_id_key":
		return fmt.Errorf("%w: membership already active", ErrConflict)
	default:
		return fmt.Errorf("%w: duplicate record", ErrConflict)
	}
}
