package xerrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Generic sentinels used across handlers
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrNotFound       = errors.New("not found")
)

// FieldIssue points at a single bad input field.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ValidationError is malformed or out-of-domain input.
// Reported to the immediate caller, never retried.
type ValidationError struct {
	Msg    string       `json:"message"`
	Fields []FieldIssue `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidation(msg string, fields ...FieldIssue) *ValidationError {
	return &ValidationError{Msg: msg, Fields: fields}
}

// NotFoundError is a referenced catalog entity that does not exist.
// Always reported, never silently defaulted.
type NotFoundError struct {
	Entity string `json:"entity"`
	Ref    string `json:"ref"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Ref)
}

func NewNotFound(entity, ref string) *NotFoundError {
	return &NotFoundError{Entity: entity, Ref: ref}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ParsePGErrorCode extracts the SQLSTATE code from a pgx error.
func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}
