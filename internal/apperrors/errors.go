package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the actor may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is in a state that does not allow the action.
var ErrConflict = errors.New("conflict")

// ErrInternal is returned when the cause must not be echoed to the caller.
var ErrInternal = errors.New("internal error")

// Ledger state machine errors.
var (
	// ErrUnauthenticated means no valid actor could be resolved for the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrAlreadyVoided is returned when voiding an entry that is not active.
	ErrAlreadyVoided = fmt.Errorf("%w: ledger entry is already voided", ErrConflict)
	// ErrAlreadyActive is returned when restoring an entry that is not voided.
	ErrAlreadyActive = fmt.Errorf("%w: ledger entry is already active", ErrConflict)
	// ErrInventoryAlreadyConsumed blocks voiding an entry whose stock has moved.
	ErrInventoryAlreadyConsumed = fmt.Errorf("%w: inventory from this entry has already been consumed or transferred", ErrConflict)
	// ErrGuardUnavailable means the consumption check could not be completed.
	ErrGuardUnavailable = errors.New("inventory consumption check unavailable")
)

// ErrRateLimited indicates the caller exceeded its request budget.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrNotProvisioned indicates the backing table for an optional feature does not exist yet.
var ErrNotProvisioned = errors.New("store not provisioned")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// ValidationError reports per-field validation failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NewFieldsValidationError creates a ValidationError for several fields at once.
func NewFieldsValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FieldErrors extracts per-field messages from err, if it carries any.
func FieldErrors(err error) (map[string]string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
