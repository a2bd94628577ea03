package errs

import "errors"

// Domain-specific sentinel errors for the nomination workflow
var (
	// Nomination errors
	ErrInvalidReference = errors.New("product reference could not be resolved")
	ErrLookupFailure    = errors.New("lookup failed")

	// Interaction errors
	ErrActionExpired      = errors.New("action context missing or expired")
	ErrUnrecognizedAction = errors.New("unrecognized interaction action")

	// Repository errors
	ErrRequestNotFound = errors.New("snack request not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
