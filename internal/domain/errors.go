package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing email, unknown budget tier).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNotConfigured is returned by every gateway operation when the hosted
// store or the image bucket has no configuration. Handlers treat it as a
// soft success and render the demo-mode notice.
var ErrNotConfigured = errors.New("storage gateway not configured")
