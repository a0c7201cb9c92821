package service

import (
	"errors"
	"fmt"
)

var (
	// Authorization errors
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrForbidden       = errors.New("forbidden: no access to this tenant")

	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")

	// Document errors
	ErrDocumentNotFound = errors.New("document not found")

	// Billing errors
	ErrStripeNotConfigured = errors.New("stripe configuration not found")

	// Backup errors
	ErrUnsupportedBackupVersion = errors.New("unsupported backup version")
)

// ValidationError marks malformed or missing caller input. Handlers map it
// to a 400 response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
