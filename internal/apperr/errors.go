package apperr

import "errors"

// Sentinel errors shared across services and handlers. Handlers translate
// them to HTTP status codes with errors.Is, so services should wrap rather
// than replace them when adding context.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("not enough permissions")

	// Spreadsheet ingestion failures.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidPrice      = errors.New("invalid price value")
	ErrInvalidQuantity   = errors.New("invalid quantity value")
	ErrInvalidDate       = errors.New("invalid date value")

	ErrValidation = errors.New("validation failed")
)
