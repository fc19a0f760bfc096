package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "Credenciales inválidas")
	ErrInactiveAccount    = New("ACCOUNT_INACTIVE", http.StatusUnauthorized, "Usuario deshabilitado")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss          = New("CACHE_MISS", http.StatusNotFound, "cache miss")

	// Constraint violations surfaced by the storage engine. All are client
	// errors: the payload was well-shaped but conflicts with existing data.
	ErrDuplicateKey      = New("DUPLICATE_KEY", http.StatusBadRequest, "duplicate key")
	ErrForeignKeyMissing = New("FOREIGN_KEY_MISSING", http.StatusBadRequest, "referenced row does not exist")
	ErrCheckFailed       = New("CHECK_FAILED", http.StatusBadRequest, "check constraint violated")
	ErrNotNull           = New("NOT_NULL", http.StatusBadRequest, "required column is null")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// FromPostgres classifies a driver error by SQLSTATE so callers can
// distinguish duplicate keys from missing references and failed checks.
// Non-constraint errors come back as internal errors.
func FromPostgres(err error) *Error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return Wrap(err, ErrDuplicateKey.Code, ErrDuplicateKey.Status, pqErr.Message)
		case "23503":
			return Wrap(err, ErrForeignKeyMissing.Code, ErrForeignKeyMissing.Status, pqErr.Message)
		case "23514":
			return Wrap(err, ErrCheckFailed.Code, ErrCheckFailed.Status, pqErr.Message)
		case "23502":
			return Wrap(err, ErrNotNull.Code, ErrNotNull.Status, pqErr.Message)
		}
	}

	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}
