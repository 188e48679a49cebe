package history

import (
	"errors"

	"github.com/iudanet/carcost/internal/validation"
)

// History store errors
var (
	// ErrEmptyName indicates a save with a blank or whitespace-only car name
	ErrEmptyName = validation.ErrEmptyCarName

	// ErrWriteFailed indicates that the storage rejected a write (quota, disabled storage)
	// The attempted mutation is rolled back
	ErrWriteFailed = errors.New("failed to persist history")

	// ErrReadFailed indicates unreadable or malformed persisted history
	// Load recovers from it by treating the history as empty
	ErrReadFailed = errors.New("failed to read history")
)

// ErrInvalidQuery indicates a JSONPath expression that cannot be parsed or evaluated
var ErrInvalidQuery = errors.New("invalid history query")
